package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents a customer rating a completed order.
// The rating scale is validated by the order aggregate.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	actor   account.Actor
	orderID kernel.UUID
	rating  int

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command to rate an order.
// Validates the acting account and the order ID. The rating value itself
// is checked by the aggregate so the scale lives in one place.
func NewRateOrderCommand(actor account.Actor, orderID kernel.UUID, rating int) (RateOrderCommand, error) {
	rateCommand := RateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rateCommand.setActor(actor),
		rateCommand.setOrderID(orderID),
	); err != nil {
		return RateOrderCommand{}, err
	}

	rateCommand.rating = rating
	return rateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRateOrderCommandIsNotConstructed if validation fails.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// Actor returns the account performing the operation.
func (c RateOrderCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the identifier of the order being rated.
func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Rating returns the requested rating value.
func (c RateOrderCommand) Rating() int {
	return c.rating
}

func (c *RateOrderCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
