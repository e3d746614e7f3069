package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

// maxTrackingCodeAttempts bounds how many fresh tracking codes the handler
// tries when the store reports a code collision.
const maxTrackingCodeAttempts = 3

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// Generates a tracking code, verifies that both branch references exist, and
// persists the new shipment together with its creation event.
//
// Tracking code collisions are resolved by retrying with a freshly generated
// code, each attempt in its own transaction. After maxTrackingCodeAttempts
// failures the conflict error is returned as-is.
type CreateShipmentCommandHandler struct {
	uowFactory    UoWFactory
	codeGenerator services.TrackingCodeGenerator
	now           func() time.Time
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a UoWFactory for transactional persistence, a tracking code
// generator, and a clock.
func NewCreateShipmentCommandHandler(
	uowFactory UoWFactory,
	codeGenerator services.TrackingCodeGenerator,
	now func() time.Time,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory:    uowFactory,
		codeGenerator: codeGenerator,
		now:           now,
	}
}

// Handle processes the shipment creation command and returns the persisted
// aggregate with its store-assigned key and tracking code.
//
// Referencing a branch that does not exist is reported as a validation error,
// not a not-found error: the missing object is the caller's input, not the
// resource being addressed.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context, cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxTrackingCodeAttempts; attempt++ {
		created, err := h.tryCreate(ctx, cmd)
		if err == nil {
			slog.InfoContext(ctx, "shipment created",
				"shipmentId", created.ID(),
				"trackingCode", created.TrackingCode().String())
			return created, nil
		}
		if !errors.Is(err, ports.ErrTrackingCodeConflict) {
			return nil, err
		}
		slog.WarnContext(ctx, "tracking code collision, retrying",
			"attempt", attempt+1)
		lastErr = err
	}

	return nil, lastErr
}

func (h *CreateShipmentCommandHandler) tryCreate(
	ctx context.Context, cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	trackingCode, err := h.codeGenerator.Generate()
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	branchRepo := uow.BranchRepository()
	if _, err = branchRepo.Get(ctx, cmd.OriginBranchID()); err != nil {
		return nil, branchLookupError("originBranchId", err)
	}
	if _, err = branchRepo.Get(ctx, cmd.DestinationBranchID()); err != nil {
		return nil, branchLookupError("destinationBranchId", err)
	}

	aggregate, err := shipment.NewShipment(
		trackingCode,
		cmd.SenderName(), cmd.SenderPhone(),
		cmd.ReceiverName(), cmd.ReceiverPhone(),
		cmd.OriginBranchID(), cmd.DestinationBranchID(),
		cmd.AssignedDriverID(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// branchLookupError turns a failed branch lookup into a validation error so
// callers report it against the request body rather than the request path.
func branchLookupError(paramName string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return err
}
