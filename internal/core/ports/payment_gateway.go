package ports

import (
	"context"
)

// PaymentGateway authorizes charges with an external payment provider.
// Authorize returns whether the charge was approved; an error indicates
// the provider could not be reached, not a declined charge.
type PaymentGateway interface {
	Authorize(ctx context.Context, amount int, transactionID string) (bool, error)
}
