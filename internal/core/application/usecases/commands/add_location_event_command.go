package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrAddLocationEventCommandIsNotConstructed = errors.New(
	"AddLocationEventCommand must be created via NewAddLocationEventCommand constructor",
)

// AddLocationEventCommand represents a request to record a driver position for
// a shipment. The shipment's status is left untouched; the appended event
// snapshots the current status.
//
// Example:
//
//	code, _ := kernel.NewTrackingCode("KH-20260829-4F21AC")
//	geo, _ := kernel.NewGeolocation(10.1, 106.7)
//	cmd, err := NewAddLocationEventCommand(code, geo, nil)
type AddLocationEventCommand struct { //nolint:recvcheck //using for validation
	trackingCode kernel.TrackingCode
	geolocation  kernel.Geolocation
	locationText *string

	guard guard.ConstructorGuard
}

// NewAddLocationEventCommand creates a command to record a driver position.
// The geolocation is mandatory on this path; the location text is optional
// and doubles as the event description when present.
func NewAddLocationEventCommand(
	trackingCode kernel.TrackingCode,
	geolocation kernel.Geolocation,
	locationText *string,
) (AddLocationEventCommand, error) {
	locationCommand := AddLocationEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setTrackingCode(trackingCode),
		locationCommand.setGeolocation(geolocation),
	); err != nil {
		return AddLocationEventCommand{}, err
	}
	locationCommand.locationText = locationText

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddLocationEventCommandIsNotConstructed if validation fails.
func (c AddLocationEventCommand) Validate() error {
	return c.guard.Validate(ErrAddLocationEventCommandIsNotConstructed)
}

// TrackingCode returns the tracking code of the shipment to update.
func (c AddLocationEventCommand) TrackingCode() kernel.TrackingCode {
	return c.trackingCode
}

// Geolocation returns the reported coordinates.
func (c AddLocationEventCommand) Geolocation() kernel.Geolocation {
	return c.geolocation
}

// LocationText returns the optional human-readable location label.
func (c AddLocationEventCommand) LocationText() *string {
	return c.locationText
}

func (c *AddLocationEventCommand) setTrackingCode(trackingCode kernel.TrackingCode) error {
	if err := trackingCode.Validate(); err != nil {
		return err
	}

	c.trackingCode = trackingCode
	return nil
}

func (c *AddLocationEventCommand) setGeolocation(geolocation kernel.Geolocation) error {
	if err := geolocation.Validate(); err != nil {
		return err
	}

	c.geolocation = geolocation
	return nil
}
