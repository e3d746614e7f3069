package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	code := testTrackingCode(t)
	reason := "Customer request"
	cmd, err := commands.NewCancelShipmentCommand(code, &reason)
	require.NoError(t, err)

	aggregate := restoredShipment(t, shipment.Pending)
	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetByTrackingCode", mock.Anything, code).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelShipmentCommandHandler(factory, testClock())
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shipment.Cancelled, cancelled.Status())
	events := cancelled.Events()
	assert.Equal(t, "Customer request", events[len(events)-1].Description())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelShipmentCommandHandler_Handle_DefaultReason(t *testing.T) {
	ctx := t.Context()
	code := testTrackingCode(t)
	cmd, err := commands.NewCancelShipmentCommand(code, nil)
	require.NoError(t, err)

	aggregate := restoredShipment(t, shipment.InTransit)
	repo := new(MockShipmentRepository)
	repo.On("GetByTrackingCode", mock.Anything, code).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelShipmentCommandHandler(factory, testClock())
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	events := cancelled.Events()
	assert.Equal(t, "Shipment cancelled by admin.", events[len(events)-1].Description())
}

func TestCancelShipmentCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	code := testTrackingCode(t)
	cmd, err := commands.NewCancelShipmentCommand(code, nil)
	require.NoError(t, err)

	aggregate := restoredShipment(t, shipment.Delivered)
	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("GetByTrackingCode", mock.Anything, code).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelShipmentCommandHandler(factory, testClock())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	// Nothing was persisted and the aggregate kept its state.
	assert.Equal(t, shipment.Delivered, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelShipmentCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	code := testTrackingCode(t)
	cmd, err := commands.NewCancelShipmentCommand(code, nil)
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	repo.On("GetByTrackingCode", mock.Anything, code).
		Return(nil, errs.NewObjectNotFoundError("trackingCode", code)).Once()

	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelShipmentCommandHandler(factory, testClock())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
