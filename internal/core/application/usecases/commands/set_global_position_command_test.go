package commands_test

import (
	"testing"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetGlobalPositionCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewSetGlobalPositionCommand(id, 3)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, 3, cmd.Position())
}

func TestNewSetGlobalPositionCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewSetGlobalPositionCommand(kernel.UUID{}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewSetGlobalPositionCommand_InvalidPosition(t *testing.T) {
	_, err := commands.NewSetGlobalPositionCommand(kernel.NewUUID(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPositionIsInvalid)
}

func TestSetGlobalPositionCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.SetGlobalPositionCommand

	err := cmd.Validate()
	require.Error(t, err)
	assert.Equal(t, commands.ErrSetGlobalPositionCommandIsNotConstructed, err)
}
