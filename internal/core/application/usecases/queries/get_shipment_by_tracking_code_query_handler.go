package queries

import (
	"context"
	"database/sql"
	"errors"

	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentByTrackingCodeQueryHandler retrieves a shipment with its full
// event history from the database.
type GetShipmentByTrackingCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByTrackingCodeQueryHandler creates a handler for shipment
// detail queries. Requires a GORM database connection for query execution.
func NewGetShipmentByTrackingCodeQueryHandler(db *gorm.DB) GetShipmentByTrackingCodeQueryHandler {
	return GetShipmentByTrackingCodeQueryHandler{db: db}
}

// Handle executes the query. Events are returned ascending by their creation
// time, with the insert order breaking ties, so the last entry always matches
// the shipment's current status.
//
// Returns an error wrapping errs.ErrObjectNotFound when no shipment carries
// the requested tracking code.
func (h GetShipmentByTrackingCodeQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByTrackingCodeQuery,
) (GetShipmentByTrackingCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentByTrackingCodeQueryResponse{}, err
	}

	var response GetShipmentByTrackingCodeQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.tracking_code,
			s.sender_name,
			s.sender_phone,
			s.receiver_name,
			s.receiver_phone,
			s.origin_branch_id,
			ob.name,
			s.destination_branch_id,
			db.name,
			s.assigned_driver_id,
			s.status,
			s.created_at
		FROM shipments s
		JOIN branches ob ON ob.id = s.origin_branch_id
		JOIN branches db ON db.id = s.destination_branch_id
		WHERE s.tracking_code = ?
	`, query.TrackingCode().String()).Row()

	err := row.Scan(
		&response.ID,
		&response.TrackingCode,
		&response.SenderName,
		&response.SenderPhone,
		&response.ReceiverName,
		&response.ReceiverPhone,
		&response.OriginBranchID,
		&response.OriginBranchName,
		&response.DestinationBranchID,
		&response.DestinationBranchName,
		&response.AssignedDriverID,
		&response.Status,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentByTrackingCodeQueryResponse{},
			errs.NewObjectNotFoundError("trackingCode", query.TrackingCode().String())
	}
	if err != nil {
		return GetShipmentByTrackingCodeQueryResponse{}, err
	}

	events, err := h.loadEvents(ctx, response.ID)
	if err != nil {
		return GetShipmentByTrackingCodeQueryResponse{}, err
	}
	response.Events = events

	return response, nil
}

func (h GetShipmentByTrackingCodeQueryHandler) loadEvents(
	ctx context.Context, shipmentID int64,
) ([]TrackingEventResponse, error) {
	events := make([]TrackingEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			description,
			latitude,
			longitude,
			location_text,
			created_at
		FROM tracking_events
		WHERE shipment_id = ?
		ORDER BY created_at, id
	`, shipmentID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackingEventResponse

		err = rows.Scan(
			&event.ID,
			&event.Status,
			&event.Description,
			&event.Latitude,
			&event.Longitude,
			&event.LocationText,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
