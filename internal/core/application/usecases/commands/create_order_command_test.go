package commands_test

import (
	"testing"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	locationIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	cmd, err := commands.NewCreateOrderCommand(id, 250, locationIDs)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, 250, cmd.TotalQuantity())
	assert.Equal(t, locationIDs, cmd.LocationIDs())
}

func TestNewCreateOrderCommand_EmptyRouting(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), 250, nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.LocationIDs())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, 250, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), 0, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTotalQuantityIsInvalid)
}

func TestNewCreateOrderCommand_InvalidLocationID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), 250, []kernel.UUID{kernel.NewUUID(), {}})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateOrderCommand_LocationIDs_ReturnsCopy(t *testing.T) {
	locationIDs := []kernel.UUID{kernel.NewUUID()}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), 250, locationIDs)
	require.NoError(t, err)

	returned := cmd.LocationIDs()
	returned[0] = kernel.NewUUID()
	assert.Equal(t, locationIDs, cmd.LocationIDs())
}

func TestCreateOrderCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.CreateOrderCommand

	err := cmd.Validate()
	require.Error(t, err)
	assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, err)
}
