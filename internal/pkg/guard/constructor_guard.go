// Package guard detects zero-value commands, queries and value objects that
// bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into types whose zero value is not usable.
// Only NewConstructorGuard sets the flag, so a struct literal fails Validate.
//
// Example:
//
//	type AddCartLineCommand struct {
//	    sessionID string
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c AddCartLineCommand) Validate() error {
//	    return c.guard.Validate(ErrAddCartLineCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not produced by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
