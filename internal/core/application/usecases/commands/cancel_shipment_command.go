package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand represents a request to cancel a shipment.
// The optional reason becomes the cancellation event's description.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	trackingCode kernel.TrackingCode
	reason       *string

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command to cancel a shipment.
// The reason is optional; a default description is used when it is absent.
func NewCancelShipmentCommand(
	trackingCode kernel.TrackingCode, reason *string,
) (CancelShipmentCommand, error) {
	cancelCommand := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setTrackingCode(trackingCode); err != nil {
		return CancelShipmentCommand{}, err
	}
	cancelCommand.reason = reason

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelShipmentCommandIsNotConstructed if validation fails.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// TrackingCode returns the tracking code of the shipment to cancel.
func (c CancelShipmentCommand) TrackingCode() kernel.TrackingCode {
	return c.trackingCode
}

// Reason returns the optional cancellation reason.
func (c CancelShipmentCommand) Reason() *string {
	return c.reason
}

func (c *CancelShipmentCommand) setTrackingCode(trackingCode kernel.TrackingCode) error {
	if err := trackingCode.Validate(); err != nil {
		return err
	}

	c.trackingCode = trackingCode
	return nil
}
