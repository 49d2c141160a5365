package commands

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var (
	ErrSetRushCommandIsNotConstructed = errors.New(
		"SetRushCommand must be created via NewSetRushCommand constructor",
	)
	ErrRushRequestedAtIsRequired = errors.New("rush request timestamp is required")
)

// SetRushCommand represents a request to move an order into the rush class.
// The timestamp decides the order's rank among rush orders: earlier requests
// are served first.
//
// Example:
//
//	cmd, err := NewSetRushCommand(orderID, time.Now().UTC())
//	if err != nil {
//	    return fmt.Errorf("invalid rush request: %w", err)
//	}
//
//	handler := NewSetRushCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to set rush: %w", err)
//	}
type SetRushCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requestedAt time.Time

	guard guard.ConstructorGuard
}

// NewSetRushCommand creates a command to flag an order as rush.
// Validates that the order ID is valid and the timestamp is set.
func NewSetRushCommand(orderID kernel.UUID, requestedAt time.Time) (SetRushCommand, error) {
	command := SetRushCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRequestedAt(requestedAt),
	); err != nil {
		return SetRushCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetRushCommandIsNotConstructed if validation fails.
func (c SetRushCommand) Validate() error {
	return c.guard.Validate(ErrSetRushCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to flag.
func (c SetRushCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequestedAt returns the moment the rush request was made.
func (c SetRushCommand) RequestedAt() time.Time {
	return c.requestedAt
}

func (c *SetRushCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetRushCommand) setRequestedAt(requestedAt time.Time) error {
	if requestedAt.IsZero() {
		return ErrRushRequestedAtIsRequired
	}

	c.requestedAt = requestedAt
	return nil
}
