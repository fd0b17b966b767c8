package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// UpdateOrderStatusCommandHandler moves an order along its lifecycle.
// The transition table in the order aggregate decides which moves are
// legal; this handler adds authorization and persistence around it.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogReader
	policy     services.AccessPolicy
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogReader,
	publisher ports.OrderEventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		policy:     services.NewAccessPolicy(),
		publisher:  publisher,
	}
}

// Handle processes the status update command.
// Locks the order row, checks that the actor owns the restaurant (or is
// an admin), applies the transition and persists the result.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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
	if err = h.policy.CanUpdateOrderStatus(cmd.Actor(), restaurant); err != nil {
		return nil, err
	}

	if err = anOrder.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, anOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(ctx, ports.OrderEvent{
		EventType:  "order.status_changed",
		OrderID:    anOrder.ID().String(),
		Status:     anOrder.Status().String(),
		OccurredAt: time.Now().UTC(),
	})

	return anOrder, nil
}
