// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders visible to the acting account, with
// optional filters. Non-admin actors are scoped to their own orders:
// customers see orders they placed, couriers see orders assigned to them
// and restaurant owners see orders placed with their restaurants.
type GetOrdersQuery struct {
	actor  account.Actor
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders. The status filter is
// optional; pass nil for all statuses.
func NewGetOrdersQuery(actor account.Actor, status *order.Status) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		actor:  actor,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the account the result set is scoped to.
func (q GetOrdersQuery) Actor() account.Actor {
	return q.actor
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// GetOrdersQueryResponse is the order list read model. Line items are not
// included; retrieve a single order for the full detail.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	CourierID    *kernel.UUID
	Status       string
	TotalAmount  int
	DeliveryFee  int
	Rating       *int
	CreatedAt    time.Time
}
