package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand represents a courier confirming a delivery
// assignment. The acting account must be the courier the order was
// assigned to.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor   account.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command for a courier to accept a delivery.
func NewAcceptDeliveryCommand(actor account.Actor, orderID kernel.UUID) (AcceptDeliveryCommand, error) {
	acceptCommand := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setActor(actor),
		acceptCommand.setOrderID(orderID),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptDeliveryCommandIsNotConstructed if validation fails.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// Actor returns the account performing the operation.
func (c AcceptDeliveryCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the identifier of the order being accepted.
func (c AcceptDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AcceptDeliveryCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AcceptDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
