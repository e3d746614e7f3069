package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddLocationEventCommand_ValidInput(t *testing.T) {
	code := testTrackingCode(t)
	geo, err := kernel.NewGeolocation(10.1, 106.7)
	require.NoError(t, err)

	cmd, err := commands.NewAddLocationEventCommand(code, geo, nil)
	require.NoError(t, err)
	assert.True(t, code.IsEqual(cmd.TrackingCode()))
	assert.InDelta(t, 10.1, cmd.Geolocation().Latitude(), 1e-9)
	assert.Nil(t, cmd.LocationText())
}

func TestNewAddLocationEventCommand_InvalidTrackingCode(t *testing.T) {
	geo, err := kernel.NewGeolocation(10.1, 106.7)
	require.NoError(t, err)

	_, err = commands.NewAddLocationEventCommand(kernel.TrackingCode{}, geo, nil)
	require.Error(t, err)
}

func TestNewAddLocationEventCommand_MissingGeolocation(t *testing.T) {
	_, err := commands.NewAddLocationEventCommand(testTrackingCode(t), kernel.Geolocation{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrGeolocationIsNotConstructed)
}
