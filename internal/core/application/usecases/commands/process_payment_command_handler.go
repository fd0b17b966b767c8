package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// ProcessPaymentCommandHandler charges an order through the payment
// gateway. Each order can be charged exactly once; a declined charge is
// persisted as a Failed payment and still counts as the one attempt.
type ProcessPaymentCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.PaymentGateway
	policy     services.AccessPolicy
}

// NewProcessPaymentCommandHandler creates a handler for payment processing.
func NewProcessPaymentCommandHandler(uowFactory UoWFactory, gateway ports.PaymentGateway) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the payment command.
// Locks the order row, verifies no payment exists yet, asks the gateway to
// authorize the requested amount under the caller's transaction ID and
// persists the settled payment. When the gateway declines, the Failed
// payment is committed and payment.ErrPaymentDeclined is returned
// alongside it.
func (h ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) (*payment.Payment, error) {
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

	anOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.CanProcessPayment(cmd.Actor(), anOrder); err != nil {
		return nil, err
	}

	paymentRepo := uow.PaymentRepository()
	if _, err = paymentRepo.GetByOrderID(ctx, cmd.OrderID()); err == nil {
		return nil, payment.ErrPaymentAlreadyExists
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	newPayment, err := payment.NewPayment(cmd.PaymentID(), cmd.OrderID(), cmd.Amount(), cmd.Method(), cmd.TransactionID())
	if err != nil {
		return nil, err
	}

	approved, err := h.gateway.Authorize(ctx, cmd.Amount(), cmd.TransactionID())
	if err != nil {
		return nil, err
	}

	if approved {
		err = newPayment.MarkSucceeded()
	} else {
		err = newPayment.MarkFailed()
	}
	if err != nil {
		return nil, err
	}

	if err = paymentRepo.Add(ctx, newPayment); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if !approved {
		return newPayment, payment.ErrPaymentDeclined
	}

	return newPayment, nil
}
