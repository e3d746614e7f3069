package kernel

import (
	"fmt"
	"regexp"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

// ErrTrackingCodeIsNotConstructed is returned when attempting to use an improperly
// initialized TrackingCode. Tracking codes must be created via NewTrackingCode.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking code must be created via NewTrackingCode constructor")

// trackingCodePattern matches the public shipment identifier format:
// a fixed "KH" prefix, the UTC generation date, and six uppercase
// alphanumeric characters, e.g. "KH-20260829-4F21AC".
var trackingCodePattern = regexp.MustCompile(`^KH-\d{8}-[0-9A-Z]{6}$`)

// TrackingCode is the human-facing unique identifier of a shipment.
// It is an immutable value object; the zero value is invalid and fails
// validation. Uniqueness across shipments is not a property of the value
// itself but is enforced by the store through a unique constraint.
//
// Example:
//
//	code, err := kernel.NewTrackingCode("KH-20260829-4F21AC")
//	if err != nil {
//	    // Handle validation error
//	}
type TrackingCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewTrackingCode creates a TrackingCode from its string form.
// Returns a validation error when the string does not match the
// KH-YYYYMMDD-XXXXXX format.
func NewTrackingCode(value string) (TrackingCode, error) {
	if value == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("trackingCode")
	}
	if !trackingCodePattern.MatchString(value) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause("trackingCode",
			fmt.Errorf("%q does not match format KH-YYYYMMDD-XXXXXX", value))
	}

	return TrackingCode{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the tracking code was created via NewTrackingCode.
func (c TrackingCode) Validate() error {
	return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
}

// String returns the tracking code in its canonical string form.
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual compares two tracking codes by value.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}
