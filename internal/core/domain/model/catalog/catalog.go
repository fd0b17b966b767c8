package catalog

import (
	"fmt"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// User is the read model of a platform user as the order engine sees it:
// an identity plus the role that gates what the user may do.
type User struct {
	id   kernel.UUID
	role account.Role
}

// NewUser creates a user read model.
func NewUser(id kernel.UUID, role account.Role) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &User{id: id, role: role}, nil
}

// ID returns the user's identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Role returns the user's platform role.
func (u *User) Role() account.Role {
	return u.role
}

// IsCourier reports whether the user may be assigned deliveries.
func (u *User) IsCourier() bool {
	return u.role == account.RoleCourier
}

// Restaurant is the read model of a restaurant: an identity plus the
// owning user who controls its orders.
type Restaurant struct {
	id      kernel.UUID
	ownerID kernel.UUID
}

// NewRestaurant creates a restaurant read model.
func NewRestaurant(id kernel.UUID, ownerID kernel.UUID) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	return &Restaurant{id: id, ownerID: ownerID}, nil
}

// ID returns the restaurant's identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the identifier of the owning user.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// IsOwnedBy reports whether the given user owns this restaurant.
func (r *Restaurant) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}

// Address is the read model of a delivery address. The engine only needs
// to know that the address exists; its postal content stays behind the
// catalog boundary.
type Address struct {
	id     kernel.UUID
	userID *kernel.UUID
}

// NewAddress creates an address read model. userID is nil for addresses
// that belong to restaurants rather than users.
func NewAddress(id kernel.UUID, userID *kernel.UUID) (*Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Address{id: id, userID: userID}, nil
}

// ID returns the address identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// UserID returns the owning user's identifier, or nil for restaurant addresses.
func (a *Address) UserID() *kernel.UUID {
	return a.userID
}

// MenuItem is the read model of a sellable menu item: its owning
// restaurant, its current price in minor currency units, and whether it is
// currently available for ordering.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	price        int
	available    bool
}

// NewMenuItem creates a menu item read model. Price is in minor currency
// units and must be positive.
func NewMenuItem(id kernel.UUID, restaurantID kernel.UUID, price int, available bool) (*MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}
	if price <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is not greater than 0", price))
	}

	return &MenuItem{
		id:           id,
		restaurantID: restaurantID,
		price:        price,
		available:    available,
	}, nil
}

// ID returns the menu item's identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the identifier of the restaurant selling this item.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Price returns the current price in minor currency units.
func (m *MenuItem) Price() int {
	return m.price
}

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.available
}

// IsSoldBy reports whether the item belongs to the given restaurant.
func (m *MenuItem) IsSoldBy(restaurantID kernel.UUID) bool {
	return m.restaurantID.IsEqual(restaurantID)
}
