package commands

import (
	"context"
	"log/slog"
	"time"

	"tracking/internal/core/domain/model/shipment"
)

// AddLocationEventCommandHandler handles driver position reports.
// Loads the shipment by tracking code, records the location event, and
// persists the change atomically. The shipment's status never changes here.
type AddLocationEventCommandHandler struct {
	uowFactory ShipmentUoWFactory
	now        func() time.Time
}

// NewAddLocationEventCommandHandler creates a handler for location reports.
// Requires a ShipmentUoWFactory for transactional persistence and a clock.
func NewAddLocationEventCommandHandler(
	uowFactory ShipmentUoWFactory, now func() time.Time,
) AddLocationEventCommandHandler {
	return AddLocationEventCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the command and returns the updated aggregate.
func (h *AddLocationEventCommandHandler) Handle(
	ctx context.Context, cmd AddLocationEventCommand,
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

	if err = aggregate.RecordLocation(cmd.Geolocation(), cmd.LocationText(), h.now()); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "location recorded",
		"trackingCode", aggregate.TrackingCode().String(),
		"geolocation", cmd.Geolocation().String())

	return aggregate, nil
}
