package queries_test

import (
	"testing"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentByTrackingCodeQuery(t *testing.T) {
	code, err := kernel.NewTrackingCode("KH-20260829-4F21AC")
	require.NoError(t, err)

	query, err := queries.NewGetShipmentByTrackingCodeQuery(code)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, code.IsEqual(query.TrackingCode()))
}

func TestNewGetShipmentByTrackingCodeQuery_InvalidCode(t *testing.T) {
	_, err := queries.NewGetShipmentByTrackingCodeQuery(kernel.TrackingCode{})
	require.Error(t, err)
}

func TestGetShipmentByTrackingCodeQuery_NotConstructed(t *testing.T) {
	query := queries.GetShipmentByTrackingCodeQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetShipmentByTrackingCodeQueryIsNotConstructed)
}

func TestNewListShipmentsQuery(t *testing.T) {
	t.Run("without_filter", func(t *testing.T) {
		query, err := queries.NewListShipmentsQuery(nil)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Nil(t, query.Status())
	})

	t.Run("with_filter", func(t *testing.T) {
		status := shipment.InTransit
		query, err := queries.NewListShipmentsQuery(&status)
		require.NoError(t, err)
		require.NotNil(t, query.Status())
		assert.Equal(t, shipment.InTransit, *query.Status())
	})

	t.Run("invalid_filter", func(t *testing.T) {
		status := shipment.Unknown
		_, err := queries.NewListShipmentsQuery(&status)
		require.Error(t, err)
	})
}

func TestNewGetAllBranchesQuery(t *testing.T) {
	query := queries.NewGetAllBranchesQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllBranchesQuery_NotConstructed(t *testing.T) {
	query := queries.GetAllBranchesQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetAllBranchesQueryIsNotConstructed)
}
