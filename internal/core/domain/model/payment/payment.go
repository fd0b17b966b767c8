package payment

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was
	// not created through the NewPayment or RestorePayment factory functions.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

	// ErrPaymentAlreadyExists is returned when a payment is attempted for
	// an order that already has one. At most one payment may ever exist
	// per order, whatever the outcome of the first attempt.
	ErrPaymentAlreadyExists = errors.New("a payment already exists for this order")

	// ErrPaymentAlreadySettled is returned when a settled payment is asked
	// to settle again. A payment decides exactly once.
	ErrPaymentAlreadySettled = errors.New("payment is already settled")

	// ErrPaymentDeclined is returned when the authorization function
	// declines the payment. The Failed payment record is retained.
	ErrPaymentDeclined = errors.New("payment was declined")
)

// Payment records a single settlement attempt for an order. There is at
// most one per order; the record is created in Processing status and
// settles to Success or Failed exactly once. Failed payments are kept, not
// rolled back, so declined attempts stay queryable.
type Payment struct {
	id            kernel.UUID
	orderID       kernel.UUID
	amount        int
	method        Method
	transactionID string
	status        Status
	createdAt     time.Time

	isConstructed bool
}

// NewPayment creates a payment in Processing status. Amount is in minor
// currency units and must be positive; the transaction ID is supplied by
// the caller and used for idempotent lookup.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount int,
	method Method,
	transactionID string,
) (*Payment, error) {
	p := &Payment{
		status:        StatusProcessing,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		p.setMethod(method),
		p.setTransactionID(transactionID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount int,
	method Method,
	transactionID string,
	status Status,
	createdAt time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, orderID, amount, method, transactionID)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	p.createdAt = createdAt
	return p, nil
}

// Validate ensures the Payment instance was built through a factory function.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the paid order.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the paid amount in minor currency units.
func (p *Payment) Amount() int {
	return p.amount
}

// Method returns the payment method.
func (p *Payment) Method() Method {
	return p.method
}

// TransactionID returns the caller-supplied transaction identifier.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

// Status returns the settlement status.
func (p *Payment) Status() Status {
	return p.status
}

// CreatedAt returns when the payment attempt was recorded.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// MarkSucceeded settles the payment as Success. Only a Processing payment
// can settle.
func (p *Payment) MarkSucceeded() error {
	return p.settle(StatusSuccess)
}

// MarkFailed settles the payment as Failed. Only a Processing payment can
// settle; the record stays behind for auditing.
func (p *Payment) MarkFailed() error {
	return p.settle(StatusFailed)
}

func (p *Payment) settle(target Status) error {
	if p.status != StatusProcessing {
		return fmt.Errorf("%w: status is %s", ErrPaymentAlreadySettled, p.status)
	}
	p.status = target
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.orderID = id
	return nil
}

func (p *Payment) setAmount(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid", fmt.Errorf("%d is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transactionID")
	}
	p.transactionID = transactionID
	return nil
}
