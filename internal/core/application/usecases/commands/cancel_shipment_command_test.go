package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelShipmentCommand_ValidInput(t *testing.T) {
	code := testTrackingCode(t)
	reason := "Customer request"

	cmd, err := commands.NewCancelShipmentCommand(code, &reason)
	require.NoError(t, err)
	assert.True(t, code.IsEqual(cmd.TrackingCode()))
	require.NotNil(t, cmd.Reason())
	assert.Equal(t, reason, *cmd.Reason())
}

func TestNewCancelShipmentCommand_NoReason(t *testing.T) {
	cmd, err := commands.NewCancelShipmentCommand(testTrackingCode(t), nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.Reason())
}

func TestNewCancelShipmentCommand_InvalidTrackingCode(t *testing.T) {
	_, err := commands.NewCancelShipmentCommand(kernel.TrackingCode{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrTrackingCodeIsNotConstructed)
}
