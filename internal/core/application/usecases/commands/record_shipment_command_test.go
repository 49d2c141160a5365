package commands_test

import (
	"testing"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordShipmentCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewRecordShipmentCommand(id, 40)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, 40, cmd.ShippedQuantity())
}

func TestNewRecordShipmentCommand_ZeroQuantity(t *testing.T) {
	cmd, err := commands.NewRecordShipmentCommand(kernel.NewUUID(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cmd.ShippedQuantity())
}

func TestNewRecordShipmentCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewRecordShipmentCommand(kernel.UUID{}, 40)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRecordShipmentCommand_NegativeQuantity(t *testing.T) {
	_, err := commands.NewRecordShipmentCommand(kernel.NewUUID(), -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrShippedQuantityIsInvalid)
}

func TestRecordShipmentCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.RecordShipmentCommand

	err := cmd.Validate()
	require.Error(t, err)
	assert.Equal(t, commands.ErrRecordShipmentCommandIsNotConstructed, err)
}
