package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// RejectDeliveryCommandHandler declines a delivery assignment.
// The order aggregate verifies that the acting courier is the assigned one,
// then clears the assignment. The order stays in Preparing status and can
// be assigned again, including to the same courier.
type RejectDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectDeliveryCommandHandler creates a handler for delivery rejection.
func NewRejectDeliveryCommandHandler(uowFactory OrderUoWFactory) RejectDeliveryCommandHandler {
	return RejectDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery rejection command.
func (h RejectDeliveryCommandHandler) Handle(ctx context.Context, cmd RejectDeliveryCommand) (*order.Order, error) {
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

	if err = anOrder.RejectDelivery(cmd.Actor().ID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, anOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return anOrder, nil
}
