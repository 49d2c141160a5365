package commands_test

import (
	"testing"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefreshLocationQueueCommand_ValidInput(t *testing.T) {
	locationID := kernel.NewUUID()

	cmd, err := commands.NewRefreshLocationQueueCommand(locationID)
	require.NoError(t, err)
	assert.Equal(t, locationID, cmd.LocationID())
}

func TestNewRefreshLocationQueueCommand_InvalidLocationID(t *testing.T) {
	_, err := commands.NewRefreshLocationQueueCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestRefreshLocationQueueCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.RefreshLocationQueueCommand

	err := cmd.Validate()
	require.Error(t, err)
	assert.Equal(t, commands.ErrRefreshLocationQueueCommandIsNotConstructed, err)
}
