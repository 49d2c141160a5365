package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrReorderLocationQueueCommandIsNotConstructed = errors.New(
	"ReorderLocationQueueCommand must be created via NewReorderLocationQueueCommand constructor",
)

// ReorderLocationQueueCommand represents a manual reorder within one
// location's queue. Unlike the global reorder, an out-of-bucket request is
// rejected rather than clamped, and the rejection reports the positions the
// order may actually take.
type ReorderLocationQueueCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID
	orderID    kernel.UUID
	position   int

	guard guard.ConstructorGuard
}

// NewReorderLocationQueueCommand creates a command to move an order within a
// location queue. Validates both identifiers and that the position is
// positive.
func NewReorderLocationQueueCommand(
	locationID kernel.UUID,
	orderID kernel.UUID,
	position int,
) (ReorderLocationQueueCommand, error) {
	command := ReorderLocationQueueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLocationID(locationID),
		command.setOrderID(orderID),
		command.setPosition(position),
	); err != nil {
		return ReorderLocationQueueCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReorderLocationQueueCommandIsNotConstructed if validation fails.
func (c ReorderLocationQueueCommand) Validate() error {
	return c.guard.Validate(ErrReorderLocationQueueCommandIsNotConstructed)
}

// LocationID returns the unique identifier of the location whose queue is
// reordered.
func (c ReorderLocationQueueCommand) LocationID() kernel.UUID {
	return c.locationID
}

// OrderID returns the unique identifier of the order to move.
func (c ReorderLocationQueueCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Position returns the requested queue position.
func (c ReorderLocationQueueCommand) Position() int {
	return c.position
}

func (c *ReorderLocationQueueCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *ReorderLocationQueueCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReorderLocationQueueCommand) setPosition(position int) error {
	if position < 1 {
		return ErrPositionIsInvalid
	}

	c.position = position
	return nil
}
