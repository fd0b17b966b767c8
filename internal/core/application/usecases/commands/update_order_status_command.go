package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle status. Whether the move is legal is decided by the order
// aggregate itself.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor   account.Actor
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Validates the acting account, the order ID and the target status.
func NewUpdateOrderStatusCommand(
	actor account.Actor,
	orderID kernel.UUID,
	status order.Status,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setActor(actor),
		statusCommand.setOrderID(orderID),
		statusCommand.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Actor returns the account performing the operation.
func (c UpdateOrderStatusCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderStatusCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
