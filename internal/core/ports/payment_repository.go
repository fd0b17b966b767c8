package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
// Storage enforces at most one payment per order.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage. Returns
	// payment.ErrPaymentAlreadyExists when a payment for the same order
	// is already stored.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByOrderID retrieves the payment recorded for an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)

	// GetByTransactionID retrieves a payment by its gateway transaction reference.
	GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error)
}
