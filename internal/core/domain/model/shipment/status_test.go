package shipment_test

import (
	"testing"

	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	validStatuses := []shipment.Status{
		shipment.Pending,
		shipment.InTransit,
		shipment.Delivered,
		shipment.Cancelled,
		shipment.Returned,
	}
	for _, status := range validStatuses {
		t.Run(status.String(), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("Unknown_is_invalid", func(t *testing.T) {
		err := shipment.Unknown.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("out_of_range_value_is_invalid", func(t *testing.T) {
		err := shipment.Status(42).Validate()
		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	testCases := map[shipment.Status]string{
		shipment.Unknown:    "Unknown",
		shipment.Pending:    "Pending",
		shipment.InTransit:  "InTransit",
		shipment.Delivered:  "Delivered",
		shipment.Cancelled:  "Cancelled",
		shipment.Returned:   "Returned",
		shipment.Status(42): "Unknown",
	}

	for status, expected := range testCases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_every_valid_status", func(t *testing.T) {
		for _, status := range []shipment.Status{
			shipment.Pending,
			shipment.InTransit,
			shipment.Delivered,
			shipment.Cancelled,
			shipment.Returned,
		} {
			parsed, err := shipment.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects_unrecognized_values", func(t *testing.T) {
		for _, value := range []string{"", "Unknown", "pending", "Shipped", "IN_TRANSIT"} {
			_, err := shipment.StatusFromString(value)
			require.Error(t, err, "value %q should be rejected", value)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("cancellable_statuses", func(t *testing.T) {
		for _, status := range []shipment.Status{shipment.Pending, shipment.InTransit, shipment.Returned} {
			newStatus, err := status.Cancel()
			require.NoError(t, err, "status %s should be cancellable", status)
			assert.Equal(t, shipment.Cancelled, newStatus)
		}
	})

	t.Run("delivered_cannot_be_cancelled", func(t *testing.T) {
		_, err := shipment.Delivered.Cancel()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("cancelled_cannot_be_cancelled_again", func(t *testing.T) {
		_, err := shipment.Cancelled.Cancel()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown_cannot_be_cancelled", func(t *testing.T) {
		_, err := shipment.Unknown.Cancel()
		require.Error(t, err)
	})
}
