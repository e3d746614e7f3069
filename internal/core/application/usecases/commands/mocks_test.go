package commands_test

import (
	"context"
	"testing"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/branch"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) GetByTrackingCode(
	ctx context.Context, trackingCode kernel.TrackingCode,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, trackingCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockBranchRepository struct{ mock.Mock }

func (m *MockBranchRepository) Get(ctx context.Context, id int64) (*branch.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*branch.Branch), args.Error(1)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) BranchRepository() ports.BranchRepository {
	args := m.Called()
	return args.Get(0).(ports.BranchRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func testTrackingCode(t *testing.T) kernel.TrackingCode {
	t.Helper()
	code, err := kernel.NewTrackingCode("KH-20260829-4F21AC")
	require.NoError(t, err)
	return code
}

// testClock returns a fixed clock later than every restoredShipment event so
// appended events always sort last regardless of when the suite runs.
func testClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	}
}

func restoredShipment(t *testing.T, status shipment.Status) *shipment.Shipment {
	t.Helper()
	createdAt := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	initial, err := shipment.RestoreTrackingEvent(1, shipment.Pending, "Shipment created", createdAt, nil, nil)
	require.NoError(t, err)

	events := []*shipment.TrackingEvent{initial}
	if status != shipment.Pending {
		second, restoreErr := shipment.RestoreTrackingEvent(
			2, status, "step", createdAt.Add(time.Hour), nil, nil,
		)
		require.NoError(t, restoreErr)
		events = append(events, second)
	}

	aggregate, err := shipment.RestoreShipment(
		10, testTrackingCode(t),
		"Sok Dara", "+855 12 345 678",
		"Chan Lina", "+855 98 765 432",
		1, 2, nil, status, createdAt, events,
	)
	require.NoError(t, err)
	return aggregate
}
