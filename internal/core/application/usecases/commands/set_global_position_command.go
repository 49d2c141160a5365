package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var (
	ErrSetGlobalPositionCommandIsNotConstructed = errors.New(
		"SetGlobalPositionCommand must be created via NewSetGlobalPositionCommand constructor",
	)
	ErrPositionIsInvalid = errors.New("position must be greater than 0")
)

// SetGlobalPositionCommand represents a manual reorder of the global queue.
// The requested position is an absolute index over the combined queue; the
// move stays within the order's own rush or regular bucket.
//
// Example:
//
//	cmd, err := NewSetGlobalPositionCommand(orderID, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid reorder: %w", err)
//	}
//
//	handler := NewSetGlobalPositionCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to reorder: %w", err)
//	}
type SetGlobalPositionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	position int

	guard guard.ConstructorGuard
}

// NewSetGlobalPositionCommand creates a command to move an order to the
// requested global position. Validates that the order ID is valid and the
// position is positive.
func NewSetGlobalPositionCommand(orderID kernel.UUID, position int) (SetGlobalPositionCommand, error) {
	command := SetGlobalPositionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPosition(position),
	); err != nil {
		return SetGlobalPositionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetGlobalPositionCommandIsNotConstructed if validation fails.
func (c SetGlobalPositionCommand) Validate() error {
	return c.guard.Validate(ErrSetGlobalPositionCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to move.
func (c SetGlobalPositionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Position returns the requested absolute position.
func (c SetGlobalPositionCommand) Position() int {
	return c.position
}

func (c *SetGlobalPositionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetGlobalPositionCommand) setPosition(position int) error {
	if position < 1 {
		return ErrPositionIsInvalid
	}

	c.position = position
	return nil
}
