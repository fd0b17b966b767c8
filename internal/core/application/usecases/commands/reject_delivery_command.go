package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrRejectDeliveryCommandIsNotConstructed = errors.New(
	"RejectDeliveryCommand must be created via NewRejectDeliveryCommand constructor",
)

// RejectDeliveryCommand represents a courier declining a delivery
// assignment. The acting account must be the courier the order was
// assigned to; the order returns to the unassigned pool.
type RejectDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor   account.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectDeliveryCommand creates a command for a courier to decline a delivery.
func NewRejectDeliveryCommand(actor account.Actor, orderID kernel.UUID) (RejectDeliveryCommand, error) {
	rejectCommand := RejectDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setActor(actor),
		rejectCommand.setOrderID(orderID),
	); err != nil {
		return RejectDeliveryCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectDeliveryCommandIsNotConstructed if validation fails.
func (c RejectDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRejectDeliveryCommandIsNotConstructed)
}

// Actor returns the account performing the operation.
func (c RejectDeliveryCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the identifier of the order being declined.
func (c RejectDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RejectDeliveryCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RejectDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
