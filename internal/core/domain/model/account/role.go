package account

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Role classifies a platform user. Every authenticated request carries
// exactly one role; authorization decisions are made from the role plus
// the relationship between the actor and the target resource.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer places orders and pays for them.
	RoleCustomer

	// RoleRestaurantOwner controls the preparation lifecycle of orders
	// placed against their restaurant.
	RoleRestaurantOwner

	// RoleCourier is eligible for delivery assignment and drives the
	// accept/reject protocol.
	RoleCourier

	// RoleAdmin is permitted to perform any operation.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "Unknown",
		RoleCustomer:        "Customer",
		RoleRestaurantOwner: "RestaurantOwner",
		RoleCourier:         "Courier",
		RoleAdmin:           "Admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:        "Customer",
		RoleRestaurantOwner: "RestaurantOwner",
		RoleCourier:         "Courier",
		RoleAdmin:           "Admin",
	}
}

// RoleFromString parses a role name as found in tokens and storage.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

// Validate reports whether the role is one of the defined platform roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the role name, or "Unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
