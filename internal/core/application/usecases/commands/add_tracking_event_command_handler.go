package commands

import (
	"context"
	"log/slog"
	"time"

	"tracking/internal/core/domain/model/shipment"
)

// AddTrackingEventCommandHandler handles appending tracking events.
// Loads the shipment by tracking code, applies the new status with its event,
// and persists the change atomically.
type AddTrackingEventCommandHandler struct {
	uowFactory ShipmentUoWFactory
	now        func() time.Time
}

// NewAddTrackingEventCommandHandler creates a handler for tracking event
// appends. Requires a ShipmentUoWFactory for transactional persistence and a
// clock.
func NewAddTrackingEventCommandHandler(
	uowFactory ShipmentUoWFactory, now func() time.Time,
) AddTrackingEventCommandHandler {
	return AddTrackingEventCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the command and returns the updated aggregate.
// The status overwrite is unrestricted: any valid status may replace the
// current one on this path.
func (h *AddTrackingEventCommandHandler) Handle(
	ctx context.Context, cmd AddTrackingEventCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.GetByTrackingCode(ctx, cmd.TrackingCode())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ApplyStatus(
		cmd.Status(), cmd.Description(), cmd.Geolocation(), cmd.LocationText(), h.now(),
	); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "tracking event added",
		"trackingCode", aggregate.TrackingCode().String(),
		"status", aggregate.Status().String())

	return aggregate, nil
}
