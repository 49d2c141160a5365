package commands_test

import (
	"testing"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateCompletedQuantityCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	locationID := kernel.NewUUID()

	cmd, err := commands.NewUpdateCompletedQuantityCommand(orderID, locationID, 120, "badge-7")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, locationID, cmd.LocationID())
	assert.Equal(t, 120, cmd.CompletedQuantity())
	assert.Equal(t, "badge-7", cmd.ActorID())
}

func TestNewUpdateCompletedQuantityCommand_NegativeQuantity(t *testing.T) {
	_, err := commands.NewUpdateCompletedQuantityCommand(kernel.NewUUID(), kernel.NewUUID(), -1, "badge-7")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCompletedQuantityIsInvalid)
}

func TestNewUpdateCompletedQuantityCommand_EmptyActorID(t *testing.T) {
	_, err := commands.NewUpdateCompletedQuantityCommand(kernel.NewUUID(), kernel.NewUUID(), 120, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrActorIDIsRequired)
}

func TestUpdateCompletedQuantityCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.UpdateCompletedQuantityCommand

	err := cmd.Validate()
	require.Error(t, err)
	assert.Equal(t, commands.ErrUpdateCompletedQuantityCommandIsNotConstructed, err)
}
