// Package catalogrepo provides read-only access to the catalog reference
// tables: users, restaurants, addresses and menu items. Orders are
// validated against these entities but never modify them, so the package
// exposes lookups only.
package catalogrepo

import (
	"github.com/google/uuid"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
)

// UserDTO represents a platform account row.
type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role string    `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// RestaurantDTO represents a restaurant row.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// AddressDTO represents a delivery address row. The user reference is
// optional: shared addresses carry no owner.
type AddressDTO struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

// MenuItemDTO represents a menu item row with its current price and
// availability flag.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Price        int
	Available    bool
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func userToDomain(dto UserDTO) (*catalog.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}
	return catalog.NewUser(id, role)
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewRestaurant(id, ownerID)
}

func addressToDomain(dto AddressDTO) (*catalog.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}
		userID = &uID
	}
	return catalog.NewAddress(id, userID)
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewMenuItem(id, restaurantID, dto.Price, dto.Available)
}
