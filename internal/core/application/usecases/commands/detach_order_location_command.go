package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrDetachOrderLocationCommandIsNotConstructed = errors.New(
	"DetachOrderLocationCommand must be created via NewDetachOrderLocationCommand constructor",
)

// DetachOrderLocationCommand represents an explicit removal of an order's
// assignment at a location, used to correct routing mistakes.
type DetachOrderLocationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDetachOrderLocationCommand creates a command to detach an order from a
// location. Validates both identifiers.
func NewDetachOrderLocationCommand(orderID kernel.UUID, locationID kernel.UUID) (DetachOrderLocationCommand, error) {
	command := DetachOrderLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setLocationID(locationID),
	); err != nil {
		return DetachOrderLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDetachOrderLocationCommandIsNotConstructed if validation fails.
func (c DetachOrderLocationCommand) Validate() error {
	return c.guard.Validate(ErrDetachOrderLocationCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to detach.
func (c DetachOrderLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the unique identifier of the location detached from.
func (c DetachOrderLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

func (c *DetachOrderLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DetachOrderLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}
