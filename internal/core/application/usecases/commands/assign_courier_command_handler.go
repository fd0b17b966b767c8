package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// ErrUserIsNotCourier is returned when the account chosen for a delivery
// assignment does not have the courier role.
var ErrUserIsNotCourier = errors.New("user is not a courier")

// AssignCourierCommandHandler hands an order to a courier for delivery.
// The order must be in Preparing status with no courier assigned yet; the
// assignee must exist in the catalog with the courier role.
type AssignCourierCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogReader
	publisher  ports.OrderEventPublisher
	policy     services.AccessPolicy
}

// NewAssignCourierCommandHandler creates a handler for courier assignment operations.
func NewAssignCourierCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogReader,
	publisher ports.OrderEventPublisher,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		publisher:  publisher,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the courier assignment command.
// Locks the order row so two concurrent assignments of the same order
// serialize; the second one then fails on the already-set courier.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	anOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	restaurant, err := h.catalog.GetRestaurant(ctx, anOrder.RestaurantID())
	if err != nil {
		return nil, err
	}
	if err = h.policy.CanAssignCourier(cmd.Actor(), restaurant); err != nil {
		return nil, err
	}

	courier, err := h.catalog.GetUser(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}
	if !courier.IsCourier() {
		return nil, ErrUserIsNotCourier
	}

	if err = anOrder.AssignCourier(cmd.CourierID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, anOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(ctx, ports.OrderEvent{
		EventType:  "order.courier_assigned",
		OrderID:    anOrder.ID().String(),
		Status:     anOrder.Status().String(),
		OccurredAt: time.Now().UTC(),
	})

	return anOrder, nil
}
