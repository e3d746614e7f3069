package queries

import (
	"context"

	"gorm.io/gorm"
)

// maxListedShipments caps how many shipments a single listing returns.
// Clients needing older shipments look them up by tracking code instead.
const maxListedShipments = 100

// ListShipmentsQueryHandler retrieves recent shipments from the database.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for listing queries.
// Requires a GORM database connection for query execution.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted newest first and capped at
// maxListedShipments rows; an empty result is a valid outcome, not an error.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]ListShipmentsQueryResponse, 0)

	sqlQuery := `
		SELECT
			s.id,
			s.tracking_code,
			s.sender_name,
			s.receiver_name,
			ob.name,
			db.name,
			s.assigned_driver_id,
			s.status,
			s.created_at
		FROM shipments s
		JOIN branches ob ON ob.id = s.origin_branch_id
		JOIN branches db ON db.id = s.destination_branch_id
	`
	args := make([]any, 0, 2)
	if query.Status() != nil {
		sqlQuery += ` WHERE s.status = ?`
		args = append(args, query.Status().String())
	}
	sqlQuery += ` ORDER BY s.created_at DESC LIMIT ?`
	args = append(args, maxListedShipments)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var shipmentResp ListShipmentsQueryResponse

		err = rows.Scan(
			&shipmentResp.ID,
			&shipmentResp.TrackingCode,
			&shipmentResp.SenderName,
			&shipmentResp.ReceiverName,
			&shipmentResp.OriginBranchName,
			&shipmentResp.DestinationBranchName,
			&shipmentResp.AssignedDriverID,
			&shipmentResp.Status,
			&shipmentResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		shipments = append(shipments, shipmentResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
