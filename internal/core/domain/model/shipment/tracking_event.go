package shipment

import (
	"errors"
	"fmt"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

// ErrTrackingEventIsNotConstructed is returned when a TrackingEvent instance was
// not created through NewTrackingEvent or RestoreTrackingEvent.
var ErrTrackingEventIsNotConstructed = errors.New(
	"TrackingEvent must be created via NewTrackingEvent or RestoreTrackingEvent")

// ErrTrackingEventIDAlreadyAssigned is returned when AssignID is called on an
// event that already carries a store-assigned key.
var ErrTrackingEventIDAlreadyAssigned = errors.New("tracking event id is already assigned")

// TrackingEvent is one immutable entry in a shipment's history. Each event
// carries a snapshot of the shipment's status as of the moment the event was
// appended, a required free-text description, and an optional reported
// geolocation with a free-text location label.
//
// Events are created only by appending through the shipment aggregate and are
// never edited or removed. An event whose status snapshot equals the previous
// one is a location-only update.
type TrackingEvent struct {
	// id is the store-assigned key; zero until the event is first persisted
	id int64

	status       Status
	description  string
	createdAt    time.Time
	geolocation  *kernel.Geolocation
	locationText *string

	isConstructed bool
}

// NewTrackingEvent creates a new, not yet persisted tracking event.
//
// Parameters:
//   - status: the shipment status snapshot the event carries (must be valid)
//   - description: required free text shown to customers
//   - occurredAt: append time; stored in UTC
//   - geolocation: optional reported coordinates
//   - locationText: optional free-text location label
//
// The append time is supplied by the caller rather than read from the global
// clock so the event log stays deterministic under test.
func NewTrackingEvent(
	status Status,
	description string,
	occurredAt time.Time,
	geolocation *kernel.Geolocation,
	locationText *string,
) (*TrackingEvent, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}
	if geolocation != nil {
		if err := geolocation.Validate(); err != nil {
			return nil, err
		}
	}

	return &TrackingEvent{
		status:        status,
		description:   description,
		createdAt:     occurredAt.UTC(),
		geolocation:   geolocation,
		locationText:  locationText,
		isConstructed: true,
	}, nil
}

// RestoreTrackingEvent reconstructs a persisted tracking event from storage.
// Unlike NewTrackingEvent it requires the store-assigned id.
func RestoreTrackingEvent(
	id int64,
	status Status,
	description string,
	createdAt time.Time,
	geolocation *kernel.Geolocation,
	locationText *string,
) (*TrackingEvent, error) {
	event, err := NewTrackingEvent(status, description, createdAt, geolocation, locationText)
	if err != nil {
		return nil, err
	}

	event.id = id
	return event, nil
}

// Validate ensures the event was created through one of its constructors.
func (e *TrackingEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrTrackingEventIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned key, or zero for events not yet persisted.
func (e *TrackingEvent) ID() int64 {
	return e.id
}

// AssignID records the store-assigned key after the event is first inserted.
// Returns ErrTrackingEventIDAlreadyAssigned when the event already has one.
func (e *TrackingEvent) AssignID(id int64) error {
	if e.id != 0 {
		return ErrTrackingEventIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid key", id))
	}

	e.id = id
	return nil
}

// Status returns the shipment status snapshot the event carries.
func (e *TrackingEvent) Status() Status {
	return e.status
}

// Description returns the event's free-text description.
func (e *TrackingEvent) Description() string {
	return e.description
}

// CreatedAt returns the UTC append time.
func (e *TrackingEvent) CreatedAt() time.Time {
	return e.createdAt
}

// Geolocation returns the reported coordinates, or nil when none were supplied.
func (e *TrackingEvent) Geolocation() *kernel.Geolocation {
	return e.geolocation
}

// LocationText returns the free-text location label, or nil when none was supplied.
func (e *TrackingEvent) LocationText() *string {
	return e.locationText
}
