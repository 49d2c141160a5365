package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrPauseWorkCommandIsNotConstructed = errors.New(
	"PauseWorkCommand must be created via NewPauseWorkCommand constructor",
)

// PauseWorkCommand represents a worker interrupting in-progress work.
// Paused work resumes through the same start operation; queue positions are
// not touched.
type PauseWorkCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	locationID kernel.UUID
	actorID    string

	guard guard.ConstructorGuard
}

// NewPauseWorkCommand creates a command to pause work on an order.
// Validates both identifiers and that the acting worker is named.
func NewPauseWorkCommand(orderID kernel.UUID, locationID kernel.UUID, actorID string) (PauseWorkCommand, error) {
	command := PauseWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setLocationID(locationID),
		command.setActorID(actorID),
	); err != nil {
		return PauseWorkCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPauseWorkCommandIsNotConstructed if validation fails.
func (c PauseWorkCommand) Validate() error {
	return c.guard.Validate(ErrPauseWorkCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order being paused.
func (c PauseWorkCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the unique identifier of the location where work pauses.
func (c PauseWorkCommand) LocationID() kernel.UUID {
	return c.locationID
}

// ActorID returns the identity of the worker pausing the work.
func (c PauseWorkCommand) ActorID() string {
	return c.actorID
}

func (c *PauseWorkCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PauseWorkCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *PauseWorkCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
