package shipment

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// Pending is the sole initial state. The nominal progression is
//
//	Pending ──> InTransit ──> Delivered
//
// with Cancelled and Returned reachable as alternate terminal states.
// The progression is deliberately not enforced as a strict transition
// graph: any valid status may overwrite the current one through the
// event-append path, so operators can correct mistakes. The only guarded
// transition is cancellation, which is rejected for shipments that are
// already Delivered or Cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a shipment is first registered.
	Pending

	// InTransit indicates the shipment left its origin branch and is moving.
	InTransit

	// Delivered indicates the shipment reached its receiver.
	Delivered

	// Cancelled indicates the shipment was cancelled before delivery.
	Cancelled

	// Returned indicates the shipment was sent back to its origin branch.
	Returned
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
		Returned:  "Returned",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
		Returned:  "Returned",
	}
}

// StatusFromString parses a status name into its Status value.
// Used to validate statuses arriving from external sources such as
// the listing filter and event-append requests.
//
// Returns an error for any string that is not one of the five valid
// status names, including "Unknown".
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InTransit, Delivered, Cancelled, Returned.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCancel checks if the status allows cancellation without performing
// the transition.
//
// Cancellation is rejected for shipments that are already Delivered or
// Cancelled; every other valid status may be cancelled.
func (s Status) ValidateCancel() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s == Delivered || s == Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - InTransit -> Cancelled
//   - Returned -> Cancelled
//
// Invalid transitions:
//   - Delivered -> Cancelled (already delivered)
//   - Cancelled -> Cancelled (already cancelled)
//   - Unknown -> Cancelled (invalid initial state)
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if cancellation is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateCancel(); err != nil {
		return 0, err
	}

	return Cancelled, nil
}
