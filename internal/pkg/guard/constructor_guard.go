// Package guard provides a defensive construction marker for value objects
// and entities. Embedding a ConstructorGuard lets a type detect whether it
// was created through its designated constructor or as a zero value, so
// validation can reject improperly built instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value guard
// is checked and no specific validation error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its
// constructor. The zero value fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object was built through its
// constructor. A zero-value guard returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
