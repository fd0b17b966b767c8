package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// AcceptDeliveryCommandHandler confirms a delivery assignment.
// The order aggregate verifies that the acting courier is the assigned one
// and that the order is still in Preparing status before moving it to
// Delivering.
type AcceptDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
func NewAcceptDeliveryCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery acceptance command.
func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) (*order.Order, error) {
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

	if err = anOrder.AcceptDelivery(cmd.Actor().ID()); err != nil {
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
