// Package gateway contains payment gateway implementations.
package gateway

import (
	"context"
)

// ParityGateway is a stand-in payment authorizer used until a real
// provider is integrated: it approves even amounts and declines odd ones.
// Deterministic outcomes make both branches of the payment flow easy to
// exercise end to end.
type ParityGateway struct{}

// NewParityGateway creates the parity-based payment authorizer.
func NewParityGateway() ParityGateway {
	return ParityGateway{}
}

// Authorize approves the charge when the amount is even.
func (ParityGateway) Authorize(_ context.Context, amount int, _ string) (bool, error) {
	return amount%2 == 0, nil
}
