// Package ports defines repository interfaces for the shipment tracking domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
)

// ErrTrackingCodeConflict is returned by Add when the aggregate's tracking
// code is already taken. The unique constraint on the tracking code column is
// the source of truth for uniqueness; callers regenerate the code and retry.
var ErrTrackingCodeConflict = errors.New("tracking code already exists")

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Provides methods for storing and retrieving shipments together with their
// complete tracking event history.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate with its creation event and
	// assigns the store-generated key to the aggregate.
	// Returns ErrTrackingCodeConflict when the tracking code is taken.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// New tracking events (those without a store-assigned key) are inserted;
	// persisted events are immutable and never rewritten.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// GetByTrackingCode retrieves a shipment aggregate by its tracking code.
	// Returns the complete shipment with its full event history.
	GetByTrackingCode(ctx context.Context, trackingCode kernel.TrackingCode) (*shipment.Shipment, error)
}
