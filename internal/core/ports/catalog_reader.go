package ports

import (
	"context"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
)

// CatalogReader provides read-only access to the reference entities that
// orders are validated against. Implementations never mutate catalog data.
type CatalogReader interface {
	// GetUser retrieves a user by its unique identifier.
	GetUser(ctx context.Context, id kernel.UUID) (*catalog.User, error)

	// GetRestaurant retrieves a restaurant by its unique identifier.
	GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)

	// GetAddress retrieves a delivery address by its unique identifier.
	GetAddress(ctx context.Context, id kernel.UUID) (*catalog.Address, error)

	// GetMenuItem retrieves a menu item by its unique identifier.
	GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)
}
