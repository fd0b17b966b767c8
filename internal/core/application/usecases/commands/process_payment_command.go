package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
)

// ProcessPaymentCommand represents a request to charge an order. The
// amount and transaction ID come from the caller; the transaction ID is
// what clients later use to look the payment up.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	actor         account.Actor
	paymentID     kernel.UUID
	orderID       kernel.UUID
	amount        int
	method        payment.Method
	transactionID string

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a command to charge an order.
// Validates the acting account, the payment and order IDs, the amount,
// the payment method and the transaction ID.
func NewProcessPaymentCommand(
	actor account.Actor,
	paymentID kernel.UUID,
	orderID kernel.UUID,
	amount int,
	method payment.Method,
	transactionID string,
) (ProcessPaymentCommand, error) {
	paymentCommand := ProcessPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setActor(actor),
		paymentCommand.setPaymentID(paymentID),
		paymentCommand.setOrderID(orderID),
		paymentCommand.setAmount(amount),
		paymentCommand.setMethod(method),
		paymentCommand.setTransactionID(transactionID),
	); err != nil {
		return ProcessPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessPaymentCommandIsNotConstructed if validation fails.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// Actor returns the account performing the operation.
func (c ProcessPaymentCommand) Actor() account.Actor {
	return c.actor
}

// PaymentID returns the unique identifier for the new payment.
func (c ProcessPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// OrderID returns the identifier of the order being charged.
func (c ProcessPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the amount to charge, in minor currency units.
func (c ProcessPaymentCommand) Amount() int {
	return c.amount
}

// Method returns the requested payment method.
func (c ProcessPaymentCommand) Method() payment.Method {
	return c.method
}

// TransactionID returns the caller-supplied transaction reference.
func (c ProcessPaymentCommand) TransactionID() string {
	return c.transactionID
}

func (c *ProcessPaymentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ProcessPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *ProcessPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessPaymentCommand) setAmount(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid", fmt.Errorf("%d is not greater than 0", amount))
	}

	c.amount = amount
	return nil
}

func (c *ProcessPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *ProcessPaymentCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transactionID")
	}

	c.transactionID = transactionID
	return nil
}
