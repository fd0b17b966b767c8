package catalogrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// GormCatalogReader implements CatalogReader using GORM. Lookups run
// outside any unit of work: catalog rows are reference data and are never
// written by this module.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a new GORM catalog reader.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// GetUser retrieves a user by ID.
func (r *GormCatalogReader) GetUser(ctx context.Context, id kernel.UUID) (*catalog.User, error) {
	var dto UserDTO
	if err := r.find(ctx, &dto, "user", id); err != nil {
		return nil, err
	}
	return userToDomain(dto)
}

// GetRestaurant retrieves a restaurant by ID.
func (r *GormCatalogReader) GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	var dto RestaurantDTO
	if err := r.find(ctx, &dto, "restaurant", id); err != nil {
		return nil, err
	}
	return restaurantToDomain(dto)
}

// GetAddress retrieves a delivery address by ID.
func (r *GormCatalogReader) GetAddress(ctx context.Context, id kernel.UUID) (*catalog.Address, error) {
	var dto AddressDTO
	if err := r.find(ctx, &dto, "address", id); err != nil {
		return nil, err
	}
	return addressToDomain(dto)
}

// GetMenuItem retrieves a menu item by ID.
func (r *GormCatalogReader) GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	var dto MenuItemDTO
	if err := r.find(ctx, &dto, "menu item", id); err != nil {
		return nil, err
	}
	return menuItemToDomain(dto)
}

func (r *GormCatalogReader) find(ctx context.Context, dto any, name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).First(dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError(name, id.String())
		}
		return err
	}
	return nil
}
