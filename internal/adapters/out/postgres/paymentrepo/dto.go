// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence. A unique index on order_id makes the
// one-payment-per-order rule hold even under concurrent writers.
package paymentrepo

import (
	"time"

	"github.com/google/uuid"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"
)

// PaymentDTO represents the database structure for persisting payment aggregates.
type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Amount        int
	Method        string `gorm:"type:varchar(16)"`
	TransactionID string `gorm:"type:varchar(64);uniqueIndex"`
	Status        string `gorm:"type:varchar(16)"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		Amount:        aggregate.Amount(),
		Method:        aggregate.Method().String(),
		TransactionID: aggregate.TransactionID(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}
	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, orderID, dto.Amount, method, dto.TransactionID, status, dto.CreatedAt)
}
