// Package guard provides a defensive construction pattern for domain objects.
//
// Embedding a ConstructorGuard in a value object makes it possible to detect
// whether the object was produced by its designated constructor or is a raw
// zero value, so validation can reject the latter.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is
// provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its constructor.
// The zero value is "not constructed" and fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state. Constructors of
// domain objects embed the result in the value they return.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
