package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem or RestoreLineItem factory functions.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")

// LineItem is one priced quantity of a menu item within an order. It is
// owned exclusively by its Order and created atomically with it.
//
// The price is a snapshot of the menu item's price at the moment the order
// was placed. It is immutable: later menu price changes never touch
// existing line items.
type LineItem struct {
	id           kernel.UUID
	menuItemID   kernel.UUID
	quantity     int
	priceAtOrder int

	isConstructed bool
}

// NewLineItem creates a line item. Quantity must be at least 1 and
// priceAtOrder (minor currency units) must be positive.
func NewLineItem(id kernel.UUID, menuItemID kernel.UUID, quantity int, priceAtOrder int) (*LineItem, error) {
	item := &LineItem{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setPriceAtOrder(priceAtOrder),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a line item from persistence. It applies the
// same validation as NewLineItem.
func RestoreLineItem(id kernel.UUID, menuItemID kernel.UUID, quantity int, priceAtOrder int) (*LineItem, error) {
	return NewLineItem(id, menuItemID, quantity, priceAtOrder)
}

// Validate ensures the line item was built through a factory function.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// MenuItemID returns the identifier of the referenced menu item.
func (li *LineItem) MenuItemID() kernel.UUID {
	return li.menuItemID
}

// Quantity returns the ordered quantity.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// PriceAtOrder returns the immutable unit price snapshot in minor currency units.
func (li *LineItem) PriceAtOrder() int {
	return li.priceAtOrder
}

// Subtotal returns quantity times the price snapshot.
func (li *LineItem) Subtotal() int {
	return li.quantity * li.priceAtOrder
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.menuItemID = id
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not at least 1", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setPriceAtOrder(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("priceAtOrder is invalid", fmt.Errorf("%d is not greater than 0", price))
	}
	li.priceAtOrder = price
	return nil
}
