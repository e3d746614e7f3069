package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand_ValidInput(t *testing.T) {
	driverID := int64(7)
	cmd, err := commands.NewCreateShipmentCommand(
		"Sok Dara", "+855 12 345 678",
		"Chan Lina", "+855 98 765 432",
		1, 2, &driverID,
	)
	require.NoError(t, err)
	assert.Equal(t, "Sok Dara", cmd.SenderName())
	assert.Equal(t, "+855 12 345 678", cmd.SenderPhone())
	assert.Equal(t, "Chan Lina", cmd.ReceiverName())
	assert.Equal(t, "+855 98 765 432", cmd.ReceiverPhone())
	assert.Equal(t, int64(1), cmd.OriginBranchID())
	assert.Equal(t, int64(2), cmd.DestinationBranchID())
	require.NotNil(t, cmd.AssignedDriverID())
	assert.Equal(t, driverID, *cmd.AssignedDriverID())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateShipmentCommand_EmptySenderName(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand("", "p", "r", "p", 1, 2, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSenderNameIsRequired)
}

func TestNewCreateShipmentCommand_EmptyReceiverPhone(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand("s", "p", "r", "", 1, 2, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReceiverPhoneIsRequired)
}

func TestNewCreateShipmentCommand_InvalidBranch(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand("s", "p", "r", "p", 0, 2, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrBranchIDIsInvalid)

	_, err = commands.NewCreateShipmentCommand("s", "p", "r", "p", 1, -1, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrBranchIDIsInvalid)
}

func TestNewCreateShipmentCommand_InvalidDriver(t *testing.T) {
	driverID := int64(0)
	_, err := commands.NewCreateShipmentCommand("s", "p", "r", "p", 1, 2, &driverID)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDriverIDIsInvalid)
}

func TestCreateShipmentCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateShipmentCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateShipmentCommandIsNotConstructed)
}
