package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is returned when an order is created without any
	// line items. Orders own a non-empty item collection by invariant.
	ErrOrderHasNoItems = errors.New("order must contain at least one line item")

	// ErrCourierAlreadyAssigned is returned when a courier is assigned to
	// an order that already has one. Assignment is single-shot until a
	// rejection clears it.
	ErrCourierAlreadyAssigned = errors.New("order already has a courier assigned")

	// ErrOrderNotAwaitingCourier is returned when an assignment-protocol
	// operation runs against an order that is not in Preparing status.
	ErrOrderNotAwaitingCourier = errors.New("order status does not allow courier operations")

	// ErrNotAssignedCourier is returned when a courier acts on an order
	// that is not assigned to them, including orders with no courier at all.
	ErrNotAssignedCourier = errors.New("order is not assigned to this courier")

	// ErrOrderNotCompleted is returned when an order is rated before it
	// reaches the Completed status.
	ErrOrderNotCompleted = errors.New("order is not completed")
)

// Order is the aggregate root coordinating a food order across customer,
// restaurant, courier, and payment. It owns its line items: they are
// created atomically with the order and are always loaded and persisted
// together with it.
//
// Invariants:
//   - line items are non-empty and immutable after creation
//   - total amount equals the sum of quantity times price snapshot over
//     all line items
//   - status only moves along the transition table in this package
//   - a courier can only be (re)assigned while the order is Preparing and
//     currently unassigned
type Order struct {
	id                kernel.UUID
	customerID        kernel.UUID
	restaurantID      kernel.UUID
	deliveryAddressID kernel.UUID
	courierID         *kernel.UUID

	status      Status
	totalAmount int
	deliveryFee int

	estimatedDeliveryTime *time.Time
	completedTime         *time.Time
	rating                *int
	createdAt             time.Time

	items []*LineItem

	isConstructed bool
}

// NewOrder creates a new order in Processing status from validated
// references and a non-empty set of line items. The total amount is
// computed from the items; the delivery fee starts at zero.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddressID kernel.UUID,
	items []*LineItem,
) (*Order, error) {
	o := &Order{
		status:        Processing,
		deliveryFee:   0,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddressID(deliveryAddressID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence. The total
// amount invariant is re-checked against the restored line items.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddressID kernel.UUID,
	courierID *kernel.UUID,
	status Status,
	deliveryFee int,
	estimatedDeliveryTime *time.Time,
	completedTime *time.Time,
	rating *int,
	createdAt time.Time,
	items []*LineItem,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, deliveryAddressID, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
	}
	if deliveryFee < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveryFee is invalid",
			fmt.Errorf("%d is negative", deliveryFee))
	}
	if rating != nil {
		if *rating < 1 || *rating > 5 {
			return nil, errs.NewValueIsOutOfRangeError("rating", *rating, 1, 5)
		}
	}

	o.courierID = courierID
	o.status = status
	o.deliveryFee = deliveryFee
	o.estimatedDeliveryTime = estimatedDeliveryTime
	o.completedTime = completedTime
	o.rating = rating
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order instance was built through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant the order was placed against.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DeliveryAddressID returns the identifier of the delivery address.
func (o *Order) DeliveryAddressID() kernel.UUID {
	return o.deliveryAddressID
}

// Courier returns the assigned courier's ID, or nil if unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the order total in minor currency units.
func (o *Order) TotalAmount() int {
	return o.totalAmount
}

// DeliveryFee returns the delivery fee in minor currency units.
func (o *Order) DeliveryFee() int {
	return o.deliveryFee
}

// EstimatedDeliveryTime returns the delivery estimate, or nil if not set.
func (o *Order) EstimatedDeliveryTime() *time.Time {
	return o.estimatedDeliveryTime
}

// CompletedTime returns when the order reached Completed, or nil before that.
func (o *Order) CompletedTime() *time.Time {
	return o.completedTime
}

// Rating returns the customer's rating (1..5), or nil if not rated.
func (o *Order) Rating() *int {
	return o.rating
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the order's line items. The slice must not be mutated.
func (o *Order) Items() []*LineItem {
	return o.items
}

// ChangeStatus moves the order along the transition table. Reaching
// Completed stamps the completion time. No other field changes.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Completed {
		now := time.Now().UTC()
		o.completedTime = &now
	}
	return nil
}

// AssignCourier assigns a courier to the order. The order must be in
// Preparing status and must not already have a courier; the status itself
// does not change until the courier accepts.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status != Preparing {
		return fmt.Errorf("%w: status is %s", ErrOrderNotAwaitingCourier, o.status)
	}
	if o.courierID != nil {
		return fmt.Errorf("%w: courier %s", ErrCourierAlreadyAssigned, o.courierID)
	}

	o.courierID = &courierID
	return nil
}

// AcceptDelivery records that the assigned courier accepted the delivery,
// moving the order to Delivering. The courier reference is unchanged.
func (o *Order) AcceptDelivery(courierID kernel.UUID) error {
	if err := o.requireAssignedCourier(courierID); err != nil {
		return err
	}
	if o.status != Preparing {
		return fmt.Errorf("%w: status is %s", ErrOrderNotAwaitingCourier, o.status)
	}

	o.status = Delivering
	return nil
}

// RejectDelivery records that the assigned courier declined the delivery.
// The courier reference is cleared and the order stays in Preparing,
// eligible for reassignment, including to the same courier.
func (o *Order) RejectDelivery(courierID kernel.UUID) error {
	if err := o.requireAssignedCourier(courierID); err != nil {
		return err
	}
	if o.status != Preparing {
		return fmt.Errorf("%w: status is %s", ErrOrderNotAwaitingCourier, o.status)
	}

	o.courierID = nil
	o.status = Preparing
	return nil
}

// Rate records the customer's rating for a completed order.
func (o *Order) Rate(rating int) error {
	if o.status != Completed {
		return fmt.Errorf("%w: status is %s", ErrOrderNotCompleted, o.status)
	}
	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	o.rating = &rating
	return nil
}

func (o *Order) requireAssignedCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return fmt.Errorf("%w: courier %s", ErrNotAssignedCourier, courierID)
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddressID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.deliveryAddressID = id
	return nil
}

func (o *Order) setItems(items []*LineItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	total := 0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.Subtotal()
	}

	o.items = items
	o.totalAmount = total
	return nil
}
