package paymentrepo

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/pkg/errs"
)

const uniqueViolationCode = "23505"

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment to the database. A unique-index violation on the
// order reference is reported as payment.ErrPaymentAlreadyExists, which
// closes the race between two concurrent charges of the same order.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return payment.ErrPaymentAlreadyExists
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payment by ID.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "id = ?", id.Bytes(), id.String())
}

// GetByOrderID retrieves the payment recorded for an order.
func (r *GormPaymentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "order_id = ?", orderID.Bytes(), orderID.String())
}

// GetByTransactionID retrieves a payment by its gateway transaction reference.
func (r *GormPaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	if transactionID == "" {
		return nil, errs.NewValueIsRequiredError("transactionID")
	}
	return r.first(ctx, "transaction_id = ?", transactionID, transactionID)
}

func (r *GormPaymentRepository) first(ctx context.Context, cond string, arg any, id string) (*payment.Payment, error) {
	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, cond, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
