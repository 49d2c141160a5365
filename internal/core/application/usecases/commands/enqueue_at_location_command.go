package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrEnqueueAtLocationCommandIsNotConstructed = errors.New(
	"EnqueueAtLocationCommand must be created via NewEnqueueAtLocationCommand constructor",
)

// EnqueueAtLocationCommand represents a manual request to queue an order at
// a processing location. The order enters the queue at the tail; the
// rebalance that follows may move it forward if it outranks its neighbours.
type EnqueueAtLocationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEnqueueAtLocationCommand creates a command to queue an order at a
// location. Validates both identifiers.
func NewEnqueueAtLocationCommand(orderID kernel.UUID, locationID kernel.UUID) (EnqueueAtLocationCommand, error) {
	command := EnqueueAtLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setLocationID(locationID),
	); err != nil {
		return EnqueueAtLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEnqueueAtLocationCommandIsNotConstructed if validation fails.
func (c EnqueueAtLocationCommand) Validate() error {
	return c.guard.Validate(ErrEnqueueAtLocationCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to queue.
func (c EnqueueAtLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the unique identifier of the target location.
func (c EnqueueAtLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

func (c *EnqueueAtLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EnqueueAtLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}
