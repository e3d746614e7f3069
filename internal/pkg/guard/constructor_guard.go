// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// distinguishable from instances created through their designated constructor,
// so invariants established at construction time cannot be bypassed.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was built through a constructor.
// The zero value is "not constructed" and fails Validate; NewConstructorGuard
// produces the constructed state. The guard is immutable and safe to copy.
//
// Example usage:
//
//	type TrackingCode struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTrackingCode(value string) (TrackingCode, error) {
//	    // validate value...
//	    return TrackingCode{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c TrackingCode) Validate() error {
//	    return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard marking its owner as properly
// constructed. Call this in every domain object constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was built through a constructor.
// For a zero-value guard it returns validationError, or
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
