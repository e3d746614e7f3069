package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/pkg/guard"
)

var (
	ErrAddTrackingEventCommandIsNotConstructed = errors.New(
		"AddTrackingEventCommand must be created via NewAddTrackingEventCommand constructor",
	)
	ErrDescriptionIsRequired = errors.New("description is required")
)

// AddTrackingEventCommand represents a request to append a tracking event to a
// shipment and overwrite its current status with the event's status.
//
// Example:
//
//	code, _ := kernel.NewTrackingCode("KH-20260829-4F21AC")
//	cmd, err := NewAddTrackingEventCommand(code, shipment.InTransit,
//	    "Left origin branch", nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid event data: %w", err)
//	}
//
//	handler := NewAddTrackingEventCommandHandler(uowFactory, time.Now)
//	updated, err := handler.Handle(ctx, cmd)
type AddTrackingEventCommand struct { //nolint:recvcheck //using for validation
	trackingCode kernel.TrackingCode
	status       shipment.Status
	description  string
	geolocation  *kernel.Geolocation
	locationText *string

	guard guard.ConstructorGuard
}

// NewAddTrackingEventCommand creates a command to append a tracking event.
// Validates the tracking code, the target status, the description, and the
// optional geolocation.
func NewAddTrackingEventCommand(
	trackingCode kernel.TrackingCode,
	status shipment.Status,
	description string,
	geolocation *kernel.Geolocation,
	locationText *string,
) (AddTrackingEventCommand, error) {
	eventCommand := AddTrackingEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		eventCommand.setTrackingCode(trackingCode),
		eventCommand.setStatus(status),
		eventCommand.setDescription(description),
		eventCommand.setGeolocation(geolocation),
	); err != nil {
		return AddTrackingEventCommand{}, err
	}
	eventCommand.locationText = locationText

	return eventCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddTrackingEventCommandIsNotConstructed if validation fails.
func (c AddTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAddTrackingEventCommandIsNotConstructed)
}

// TrackingCode returns the tracking code of the shipment to update.
func (c AddTrackingEventCommand) TrackingCode() kernel.TrackingCode {
	return c.trackingCode
}

// Status returns the status the shipment moves to.
func (c AddTrackingEventCommand) Status() shipment.Status {
	return c.status
}

// Description returns the event description.
func (c AddTrackingEventCommand) Description() string {
	return c.description
}

// Geolocation returns the optional event coordinates.
func (c AddTrackingEventCommand) Geolocation() *kernel.Geolocation {
	return c.geolocation
}

// LocationText returns the optional human-readable location label.
func (c AddTrackingEventCommand) LocationText() *string {
	return c.locationText
}

func (c *AddTrackingEventCommand) setTrackingCode(trackingCode kernel.TrackingCode) error {
	if err := trackingCode.Validate(); err != nil {
		return err
	}

	c.trackingCode = trackingCode
	return nil
}

func (c *AddTrackingEventCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *AddTrackingEventCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *AddTrackingEventCommand) setGeolocation(geolocation *kernel.Geolocation) error {
	if geolocation != nil {
		if err := geolocation.Validate(); err != nil {
			return err
		}
	}

	c.geolocation = geolocation
	return nil
}
