package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves recent shipments, optionally filtered by status.
//
// Example:
//
//	status := shipment.InTransit
//	query, _ := NewListShipmentsQuery(&status)
//	handler := NewListShipmentsQueryHandler(db)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list shipments: %w", err)
//	}
//	fmt.Printf("Found %d shipments in transit\n", len(shipments))
type ListShipmentsQuery struct {
	status *shipment.Status

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a listing query. A nil status means no filter.
func NewListShipmentsQuery(status *shipment.Status) (ListShipmentsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
	}

	return ListShipmentsQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListShipmentsQueryIsNotConstructed if validation fails.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q ListShipmentsQuery) Status() *shipment.Status {
	return q.status
}

// ListShipmentsQueryResponse represents one shipment in a listing. Branch
// references are resolved to their names for the admin view. Event histories
// are omitted; use GetShipmentByTrackingCodeQuery for details.
type ListShipmentsQueryResponse struct {
	ID                    int64
	TrackingCode          string
	SenderName            string
	ReceiverName          string
	OriginBranchName      string
	DestinationBranchName string
	AssignedDriverID      *int64
	Status                string
	CreatedAt             time.Time
}
