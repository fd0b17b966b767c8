package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// RateOrderCommandHandler records a customer's rating of a completed
// order. Only the customer who placed the order (or an admin) may rate it,
// and only once the order is Completed.
type RateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewRateOrderCommandHandler creates a handler for order rating.
func NewRateOrderCommandHandler(uowFactory OrderUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the rating command.
func (h RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) (*order.Order, error) {
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

	if err = h.policy.CanRateOrder(cmd.Actor(), anOrder); err != nil {
		return nil, err
	}

	if err = anOrder.Rate(cmd.Rating()); err != nil {
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
