// Package queries contains read operations for the CQRS architecture.
// Query handlers read from the database directly and return flat response
// models; they never load or mutate domain aggregates.
package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrGetShipmentByTrackingCodeQueryIsNotConstructed = errors.New(
	"GetShipmentByTrackingCodeQuery must be created via NewGetShipmentByTrackingCodeQuery constructor",
)

// GetShipmentByTrackingCodeQuery retrieves a single shipment with its full
// tracking history.
//
// Example:
//
//	code, _ := kernel.NewTrackingCode("KH-20260829-4F21AC")
//	query, _ := NewGetShipmentByTrackingCodeQuery(code)
//	handler := NewGetShipmentByTrackingCodeQueryHandler(db)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shipment: %w", err)
//	}
//	fmt.Printf("%s: %s with %d events\n", detail.TrackingCode, detail.Status, len(detail.Events))
type GetShipmentByTrackingCodeQuery struct {
	trackingCode kernel.TrackingCode

	guard guard.ConstructorGuard
}

// NewGetShipmentByTrackingCodeQuery creates a query for the given tracking code.
func NewGetShipmentByTrackingCodeQuery(
	trackingCode kernel.TrackingCode,
) (GetShipmentByTrackingCodeQuery, error) {
	if err := trackingCode.Validate(); err != nil {
		return GetShipmentByTrackingCodeQuery{}, err
	}

	return GetShipmentByTrackingCodeQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentByTrackingCodeQueryIsNotConstructed if validation fails.
func (q GetShipmentByTrackingCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByTrackingCodeQueryIsNotConstructed)
}

// TrackingCode returns the tracking code to look up.
func (q GetShipmentByTrackingCodeQuery) TrackingCode() kernel.TrackingCode {
	return q.trackingCode
}

// GetShipmentByTrackingCodeQueryResponse represents a shipment with its
// complete event history. Statuses are rendered as their string names and
// branch references are resolved to their names.
type GetShipmentByTrackingCodeQueryResponse struct {
	ID                    int64
	TrackingCode          string
	SenderName            string
	SenderPhone           string
	ReceiverName          string
	ReceiverPhone         string
	OriginBranchID        int64
	OriginBranchName      string
	DestinationBranchID   int64
	DestinationBranchName string
	AssignedDriverID      *int64
	Status                string
	CreatedAt             time.Time
	Events                []TrackingEventResponse
}

// TrackingEventResponse represents a single entry of a shipment's history.
type TrackingEventResponse struct {
	ID           int64
	Status       string
	Description  string
	Latitude     *float64
	Longitude    *float64
	LocationText *string
	CreatedAt    time.Time
}
