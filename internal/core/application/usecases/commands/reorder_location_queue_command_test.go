package commands_test

import (
	"testing"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReorderLocationQueueCommand_ValidInput(t *testing.T) {
	locationID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewReorderLocationQueueCommand(locationID, orderID, 2)
	require.NoError(t, err)
	assert.Equal(t, locationID, cmd.LocationID())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, 2, cmd.Position())
}

func TestNewReorderLocationQueueCommand_InvalidLocationID(t *testing.T) {
	_, err := commands.NewReorderLocationQueueCommand(kernel.UUID{}, kernel.NewUUID(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewReorderLocationQueueCommand_InvalidPosition(t *testing.T) {
	_, err := commands.NewReorderLocationQueueCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPositionIsInvalid)
}

func TestReorderLocationQueueCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.ReorderLocationQueueCommand

	err := cmd.Validate()
	require.Error(t, err)
	assert.Equal(t, commands.ErrReorderLocationQueueCommandIsNotConstructed, err)
}
