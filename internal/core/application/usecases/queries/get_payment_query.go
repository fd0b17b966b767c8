package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetPaymentQueryIsNotConstructed = errors.New(
		"GetPaymentQuery must be created via NewGetPaymentQuery constructor",
	)
	ErrPaymentLookupIsAmbiguous = errors.New(
		"exactly one of order ID or transaction ID must be set",
	)
)

// GetPaymentQuery retrieves a single payment either by the order it
// charged or by its gateway transaction reference.
type GetPaymentQuery struct {
	actor         account.Actor
	orderID       *kernel.UUID
	transactionID string

	guard guard.ConstructorGuard
}

// NewGetPaymentQuery creates a payment lookup query. Exactly one of
// orderID and transactionID must be provided.
func NewGetPaymentQuery(actor account.Actor, orderID *kernel.UUID, transactionID string) (GetPaymentQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetPaymentQuery{}, err
	}
	if (orderID == nil) == (transactionID == "") {
		return GetPaymentQuery{}, ErrPaymentLookupIsAmbiguous
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return GetPaymentQuery{}, err
		}
	}

	return GetPaymentQuery{
		actor:         actor,
		orderID:       orderID,
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPaymentQueryIsNotConstructed if validation fails.
func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

// Actor returns the account requesting the payment.
func (q GetPaymentQuery) Actor() account.Actor {
	return q.actor
}

// OrderID returns the order filter, if set.
func (q GetPaymentQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// TransactionID returns the transaction reference filter, if set.
func (q GetPaymentQuery) TransactionID() string {
	return q.transactionID
}

// GetPaymentQueryResponse is the payment read model.
type GetPaymentQueryResponse struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	Amount        int
	Method        string
	TransactionID string
	Status        string
	CreatedAt     time.Time
}
