package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order together with its line items.
// Visibility follows the same rules as the order list: admins see every
// order, everyone else only orders they participate in.
type GetOrderQuery struct {
	actor   account.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to read one order by ID.
func NewGetOrderQuery(actor account.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the account requesting the order.
func (q GetOrderQuery) Actor() account.Actor {
	return q.actor
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryLineItem is one position of the order read model.
type GetOrderQueryLineItem struct {
	ID           kernel.UUID
	MenuItemID   kernel.UUID
	Quantity     int
	PriceAtOrder int
}

// GetOrderQueryResponse is the single-order read model, including the
// priced line items snapshotted at order time.
type GetOrderQueryResponse struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	RestaurantID          kernel.UUID
	DeliveryAddressID     kernel.UUID
	CourierID             *kernel.UUID
	Status                string
	TotalAmount           int
	DeliveryFee           int
	EstimatedDeliveryTime *time.Time
	CompletedTime         *time.Time
	Rating                *int
	CreatedAt             time.Time
	Items                 []GetOrderQueryLineItem
}
