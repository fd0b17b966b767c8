package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// OrderItem is a single requested position of a new order: which menu item
// and how many. Prices are not part of the request; they are snapshotted
// from the catalog at creation time.
type OrderItem struct {
	menuItemID kernel.UUID
	quantity   int
}

// NewOrderItem creates a requested order position.
// Validates that the menu item ID is valid and quantity is positive.
func NewOrderItem(menuItemID kernel.UUID, quantity int) (OrderItem, error) {
	if err := menuItemID.Validate(); err != nil {
		return OrderItem{}, err
	}
	if quantity <= 0 {
		return OrderItem{}, ErrQuantityIsInvalid
	}

	return OrderItem{menuItemID: menuItemID, quantity: quantity}, nil
}

// MenuItemID returns the identifier of the requested menu item.
func (i OrderItem) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns how many units of the menu item were requested.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// CreateOrderCommand represents a request to place a new food order.
// Encapsulates the ordering customer, the restaurant, the delivery address
// and the requested items.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor             account.Actor
	orderID           kernel.UUID
	customerID        kernel.UUID
	restaurantID      kernel.UUID
	deliveryAddressID kernel.UUID
	items             []OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the acting account, all entity references and that at least
// one item is requested. Returns an error if any validation fails.
func NewCreateOrderCommand(
	actor account.Actor,
	orderID kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddressID kernel.UUID,
	items []OrderItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActor(actor),
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setDeliveryAddressID(deliveryAddressID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the account performing the operation.
func (c CreateOrderCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the identifier of the restaurant the order is placed with.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DeliveryAddressID returns the identifier of the delivery address.
func (c CreateOrderCommand) DeliveryAddressID() kernel.UUID {
	return c.deliveryAddressID
}

// Items returns the requested order positions.
func (c CreateOrderCommand) Items() []OrderItem {
	return c.items
}

func (c *CreateOrderCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddressID(deliveryAddressID kernel.UUID) error {
	if err := deliveryAddressID.Validate(); err != nil {
		return err
	}

	c.deliveryAddressID = deliveryAddressID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	c.items = items
	return nil
}
