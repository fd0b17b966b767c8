package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a request to hand an order to a specific
// courier for delivery. Only orders in Preparing status without a courier
// accept an assignment.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	actor     account.Actor
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign a courier to an order.
// Validates the acting account, the order ID and the courier ID.
func NewAssignCourierCommand(
	actor account.Actor,
	orderID kernel.UUID,
	courierID kernel.UUID,
) (AssignCourierCommand, error) {
	assignCommand := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setActor(actor),
		assignCommand.setOrderID(orderID),
		assignCommand.setCourierID(courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// Actor returns the account performing the operation.
func (c AssignCourierCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the identifier of the order to assign.
func (c AssignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identifier of the courier to assign.
func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AssignCourierCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AssignCourierCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
