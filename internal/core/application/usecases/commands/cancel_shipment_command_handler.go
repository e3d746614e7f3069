package commands

import (
	"context"
	"log/slog"
	"time"

	"tracking/internal/core/domain/model/shipment"
)

// CancelShipmentCommandHandler handles shipment cancellation.
// Loads the shipment by tracking code, applies the guarded Cancelled
// transition, and persists the change atomically.
type CancelShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	now        func() time.Time
}

// NewCancelShipmentCommandHandler creates a handler for cancellations.
// Requires a ShipmentUoWFactory for transactional persistence and a clock.
func NewCancelShipmentCommandHandler(
	uowFactory ShipmentUoWFactory, now func() time.Time,
) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the cancellation and returns the updated aggregate.
// Returns a validation error for shipments that are already Delivered or
// Cancelled; the shipment is left unchanged in that case.
func (h *CancelShipmentCommandHandler) Handle(
	ctx context.Context, cmd CancelShipmentCommand,
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

	if err = aggregate.Cancel(cmd.Reason(), h.now()); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "shipment cancelled",
		"trackingCode", aggregate.TrackingCode().String())

	return aggregate, nil
}
