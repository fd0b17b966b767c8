package account

import "foodorder/internal/core/domain/model/kernel"

// Actor is the authenticated identity on whose behalf an operation runs.
// It is supplied by the identity layer and treated as trusted input; the
// engine only uses it for authorization decisions.
//
// Actor is an immutable value object. The zero value is invalid.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor creates an actor from a validated identity and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{id: id, role: role}, nil
}

// ID returns the actor's user identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's platform role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor holds the administrator role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Validate reports whether the actor was built through NewActor.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
