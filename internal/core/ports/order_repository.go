// Package ports defines the contracts between the application core and
// infrastructure. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and locks its row for the
	// duration of the surrounding transaction. Concurrent mutations of the
	// same order serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
