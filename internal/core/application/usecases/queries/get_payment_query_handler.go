package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// GetPaymentQueryHandler retrieves payment records from the database.
// The payment row is joined with its order so visibility can be decided
// without a second round trip: only admins and the ordering customer may
// read a payment.
type GetPaymentQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentQueryHandler creates a handler for payment lookup queries.
func NewGetPaymentQueryHandler(db *gorm.DB) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{db: db}
}

// Handle executes the payment lookup.
func (h GetPaymentQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentQuery,
) (*GetPaymentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			p.id,
			p.order_id,
			p.amount,
			p.method,
			p.transaction_id,
			p.status,
			p.created_at,
			o.customer_id
		FROM payments p
		JOIN orders o ON o.id = p.order_id
	`
	var arg any
	if orderID := query.OrderID(); orderID != nil {
		stmt += ` WHERE p.order_id = ?`
		arg = orderID.Bytes()
	} else {
		stmt += ` WHERE p.transaction_id = ?`
		arg = query.TransactionID()
	}

	row := h.db.WithContext(ctx).Raw(stmt, arg).Row()

	var response GetPaymentQueryResponse
	var id, orderID, customerID uuid.UUID
	var createdAt time.Time

	err := row.Scan(
		&id,
		&orderID,
		&response.Amount,
		&response.Method,
		&response.TransactionID,
		&response.Status,
		&createdAt,
		&customerID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("payment", arg)
	}
	if err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !actor.IsAdmin() && customerID != actor.ID().Bytes() {
		return nil, services.ErrPermissionDenied
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return nil, err
	}
	response.CreatedAt = createdAt

	return &response, nil
}
