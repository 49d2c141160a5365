package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrUnsetRushCommandIsNotConstructed = errors.New(
	"UnsetRushCommand must be created via NewUnsetRushCommand constructor",
)

// UnsetRushCommand represents a request to move an order out of the rush
// class. The order loses its old rank and rejoins the regular bucket at the
// end.
type UnsetRushCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnsetRushCommand creates a command to clear an order's rush flag.
// Validates that the order ID is valid.
func NewUnsetRushCommand(orderID kernel.UUID) (UnsetRushCommand, error) {
	command := UnsetRushCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return UnsetRushCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUnsetRushCommandIsNotConstructed if validation fails.
func (c UnsetRushCommand) Validate() error {
	return c.guard.Validate(ErrUnsetRushCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to unflag.
func (c UnsetRushCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *UnsetRushCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
