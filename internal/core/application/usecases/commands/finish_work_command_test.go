package commands_test

import (
	"testing"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFinishWorkCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	locationID := kernel.NewUUID()

	cmd, err := commands.NewFinishWorkCommand(orderID, locationID, 250, "badge-7")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, locationID, cmd.LocationID())
	assert.Equal(t, 250, cmd.CompletedQuantity())
	assert.Equal(t, "badge-7", cmd.ActorID())
}

func TestNewFinishWorkCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewFinishWorkCommand(kernel.UUID{}, kernel.NewUUID(), 250, "badge-7")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewFinishWorkCommand_NegativeQuantity(t *testing.T) {
	_, err := commands.NewFinishWorkCommand(kernel.NewUUID(), kernel.NewUUID(), -1, "badge-7")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCompletedQuantityIsInvalid)
}

func TestNewFinishWorkCommand_EmptyActorID(t *testing.T) {
	_, err := commands.NewFinishWorkCommand(kernel.NewUUID(), kernel.NewUUID(), 250, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrActorIDIsRequired)
}

func TestFinishWorkCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.FinishWorkCommand

	err := cmd.Validate()
	require.Error(t, err)
	assert.Equal(t, commands.ErrFinishWorkCommandIsNotConstructed, err)
}
