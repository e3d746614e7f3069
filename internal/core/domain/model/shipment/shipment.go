package shipment

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrShipmentIDAlreadyAssigned is returned when the store tries to assign a key
	// to a shipment that already has one.
	ErrShipmentIDAlreadyAssigned = errors.New("shipment ID is already assigned")
)

const (
	// createdEventDescription is the description of the synthetic event emitted
	// atomically with shipment creation.
	createdEventDescription = "Shipment created"

	// defaultLocationEventDescription is used for location-only events when the
	// driver supplied no location text.
	defaultLocationEventDescription = "Driver GPS update"

	// defaultCancelReason is used when a cancellation carries no reason.
	defaultCancelReason = "Shipment cancelled by admin."
)

// Shipment is the aggregate root of the tracking domain. It owns its event log
// exclusively: events are appended through the aggregate's mutating methods and
// never outlive the shipment.
//
// Shipment maintains these invariants:
//   - It always holds at least one event (the creation event)
//   - Its status always equals the status snapshot of the most recently appended event
//   - Sender and receiver details are non-empty
//   - Origin and destination reference existing branches at creation time
//     (checked once by the creation use case, not re-validated afterward)
type Shipment struct {
	// id is the store-assigned key; zero until the shipment is first persisted
	id int64

	trackingCode kernel.TrackingCode

	senderName    string
	senderPhone   string
	receiverName  string
	receiverPhone string

	originBranchID      int64
	destinationBranchID int64

	// assignedDriverID references a driver in an external system;
	// its existence is deliberately not validated here
	assignedDriverID *int64

	status    Status
	createdAt time.Time

	// events is kept in append order; Events() sorts by timestamp with the
	// append order as the stable tie-break
	events []*TrackingEvent

	isConstructed bool
}

// NewShipment creates a new shipment in Pending status with its synthetic
// "Shipment created" event. The creation time is supplied by the caller and
// stored in UTC; both the shipment and its first event carry it.
//
// Branch existence is the creation use case's responsibility; this constructor
// only checks that the references are present.
func NewShipment(
	trackingCode kernel.TrackingCode,
	senderName, senderPhone string,
	receiverName, receiverPhone string,
	originBranchID, destinationBranchID int64,
	assignedDriverID *int64,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setTrackingCode(trackingCode),
		s.setSender(senderName, senderPhone),
		s.setReceiver(receiverName, receiverPhone),
		s.setRoute(originBranchID, destinationBranchID),
	); err != nil {
		return nil, err
	}
	s.assignedDriverID = assignedDriverID

	initial, err := NewTrackingEvent(Pending, createdEventDescription, createdAt, nil, nil)
	if err != nil {
		return nil, err
	}
	s.events = append(s.events, initial)

	return s, nil
}

// RestoreShipment reconstructs a persisted shipment from storage.
// The supplied events must contain at least the creation event; their order
// does not matter since Events() re-sorts on read.
func RestoreShipment(
	id int64,
	trackingCode kernel.TrackingCode,
	senderName, senderPhone string,
	receiverName, receiverPhone string,
	originBranchID, destinationBranchID int64,
	assignedDriverID *int64,
	status Status,
	createdAt time.Time,
	events []*TrackingEvent,
) (*Shipment, error) {
	s := &Shipment{
		id:            id,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setTrackingCode(trackingCode),
		s.setSender(senderName, senderPhone),
		s.setReceiver(receiverName, receiverPhone),
		s.setRoute(originBranchID, destinationBranchID),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}
	s.assignedDriverID = assignedDriverID

	if len(events) == 0 {
		return nil, errs.NewValueIsRequiredError("events")
	}
	for _, event := range events {
		if err := event.Validate(); err != nil {
			return nil, err
		}
	}
	s.events = events

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed through one
// of its factory methods. This prevents bypassing validation by directly
// instantiating the struct.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their tracking codes.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.trackingCode.IsEqual(other.trackingCode)
}

// ID returns the store-assigned key, or zero for shipments not yet persisted.
func (s *Shipment) ID() int64 {
	return s.id
}

// AssignID records the store-assigned key after the first insert.
// Returns ErrShipmentIDAlreadyAssigned when the shipment already has one.
func (s *Shipment) AssignID(id int64) error {
	if s.id != 0 {
		return ErrShipmentIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid key", id))
	}

	s.id = id
	return nil
}

// TrackingCode returns the shipment's human-facing unique identifier.
func (s *Shipment) TrackingCode() kernel.TrackingCode {
	return s.trackingCode
}

// SenderName returns the sender's display name.
func (s *Shipment) SenderName() string {
	return s.senderName
}

// SenderPhone returns the sender's phone number.
func (s *Shipment) SenderPhone() string {
	return s.senderPhone
}

// ReceiverName returns the receiver's display name.
func (s *Shipment) ReceiverName() string {
	return s.receiverName
}

// ReceiverPhone returns the receiver's phone number.
func (s *Shipment) ReceiverPhone() string {
	return s.receiverPhone
}

// OriginBranchID returns the origin branch reference.
func (s *Shipment) OriginBranchID() int64 {
	return s.originBranchID
}

// DestinationBranchID returns the destination branch reference.
func (s *Shipment) DestinationBranchID() int64 {
	return s.destinationBranchID
}

// AssignedDriverID returns the assigned driver reference.
// Returns nil if no driver is assigned.
func (s *Shipment) AssignedDriverID() *int64 {
	return s.assignedDriverID
}

// Status returns the shipment's current status. It always equals the status
// snapshot of the most recently appended event.
func (s *Shipment) Status() Status {
	return s.status
}

// CreatedAt returns the UTC creation time.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// Events returns the shipment's history sorted ascending by append time.
// Ties are broken by append order (stable). The returned slice is a copy;
// the events themselves are shared and immutable.
func (s *Shipment) Events() []*TrackingEvent {
	ordered := make([]*TrackingEvent, len(s.events))
	copy(ordered, s.events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt().Before(ordered[j].CreatedAt())
	})
	return ordered
}

// ApplyStatus overwrites the shipment's status and appends a matching event.
//
// Any valid status may overwrite the current one; no transition graph is
// enforced here. This keeps the event-append path available to operators
// for corrections (for example moving a mistakenly Delivered shipment back
// to InTransit). The geolocation and location text are optional.
func (s *Shipment) ApplyStatus(
	newStatus Status,
	description string,
	geolocation *kernel.Geolocation,
	locationText *string,
	occurredAt time.Time,
) error {
	event, err := NewTrackingEvent(newStatus, description, occurredAt, geolocation, locationText)
	if err != nil {
		return err
	}

	s.events = append(s.events, event)
	s.status = newStatus
	return nil
}

// RecordLocation appends a location-only event. The shipment's status is
// unchanged and the appended event carries the current status as its snapshot.
// When no location text is supplied the event description defaults to
// "Driver GPS update"; otherwise the location text doubles as the description.
func (s *Shipment) RecordLocation(
	geolocation kernel.Geolocation,
	locationText *string,
	occurredAt time.Time,
) error {
	if err := geolocation.Validate(); err != nil {
		return err
	}

	description := defaultLocationEventDescription
	if locationText != nil && *locationText != "" {
		description = *locationText
	}

	event, err := NewTrackingEvent(s.status, description, occurredAt, &geolocation, locationText)
	if err != nil {
		return err
	}

	s.events = append(s.events, event)
	return nil
}

// Cancel transitions the shipment to Cancelled and appends an event whose
// description is the supplied reason, or "Shipment cancelled by admin." when
// no reason is given.
//
// Cancellation is rejected with a validation error when the shipment is
// already Delivered or Cancelled; the status and event log are left untouched
// in that case.
func (s *Shipment) Cancel(reason *string, occurredAt time.Time) error {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}

	description := defaultCancelReason
	if reason != nil && *reason != "" {
		description = *reason
	}

	event, err := NewTrackingEvent(newStatus, description, occurredAt, nil, nil)
	if err != nil {
		return err
	}

	s.events = append(s.events, event)
	s.status = newStatus
	return nil
}

func (s *Shipment) setTrackingCode(trackingCode kernel.TrackingCode) error {
	if err := trackingCode.Validate(); err != nil {
		return err
	}
	s.trackingCode = trackingCode
	return nil
}

func (s *Shipment) setSender(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("senderName")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("senderPhone")
	}
	s.senderName = name
	s.senderPhone = phone
	return nil
}

func (s *Shipment) setReceiver(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("receiverName")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("receiverPhone")
	}
	s.receiverName = name
	s.receiverPhone = phone
	return nil
}

func (s *Shipment) setRoute(originBranchID, destinationBranchID int64) error {
	if originBranchID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("originBranchId",
			fmt.Errorf("%d is not a valid branch reference", originBranchID))
	}
	if destinationBranchID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("destinationBranchId",
			fmt.Errorf("%d is not a valid branch reference", destinationBranchID))
	}
	s.originBranchID = originBranchID
	s.destinationBranchID = destinationBranchID
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
