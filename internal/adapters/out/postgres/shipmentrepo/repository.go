package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(trackingCode kernel.TrackingCode, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment with its events and backfills the store-assigned
// keys into the aggregate.
//
// Relies on gorm.Config.TranslateError turning the unique-index violation on
// the tracking code into gorm.ErrDuplicatedKey, which is reported to callers
// as ports.ErrTrackingCodeConflict.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ports.ErrTrackingCodeConflict, dto.TrackingCode)
		}
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}
	for i, event := range aggregate.Events() {
		if err := event.AssignID(dto.Events[i].ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.TrackingCode(), aggregate)
	return nil
}

// Update saves changes to an existing shipment. The shipment row's mutable
// columns are rewritten and any events without a store-assigned key are
// inserted; persisted events are immutable and left untouched.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() == 0 {
		return gorm.ErrRecordNotFound
	}

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"status":             aggregate.Status().String(),
			"assigned_driver_id": aggregate.AssignedDriverID(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for _, event := range aggregate.Events() {
		if event.ID() != 0 {
			continue
		}

		eventDTO := eventFromDomain(aggregate.ID(), event)
		if err := r.db.WithContext(ctx).Create(&eventDTO).Error; err != nil {
			return err
		}
		if err := event.AssignID(eventDTO.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.TrackingCode(), aggregate)
	return nil
}

// GetByTrackingCode retrieves a shipment with its full event history.
func (r *GormShipmentRepository) GetByTrackingCode(
	ctx context.Context, trackingCode kernel.TrackingCode,
) (*shipment.Shipment, error) {
	if err := trackingCode.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at, id")
		}).
		First(&dto, "tracking_code = ?", trackingCode.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingCode", trackingCode.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
