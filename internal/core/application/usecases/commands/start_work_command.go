package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var (
	ErrStartWorkCommandIsNotConstructed = errors.New(
		"StartWorkCommand must be created via NewStartWorkCommand constructor",
	)
	ErrActorIDIsRequired = errors.New("actor id is required")
)

// StartWorkCommand represents a worker picking up an order at a location.
// Starting takes the order out of the location's queue and immediately
// stages it at the next location along the route, so downstream stations
// see incoming work early.
//
// Example:
//
//	cmd, err := NewStartWorkCommand(orderID, locationID, badge)
//	if err != nil {
//	    return fmt.Errorf("invalid start request: %w", err)
//	}
//
//	handler := NewStartWorkCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start work: %w", err)
//	}
type StartWorkCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	locationID kernel.UUID
	actorID    string

	guard guard.ConstructorGuard
}

// NewStartWorkCommand creates a command to start work on an order.
// Validates both identifiers and that the acting worker is named.
func NewStartWorkCommand(orderID kernel.UUID, locationID kernel.UUID, actorID string) (StartWorkCommand, error) {
	command := StartWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setLocationID(locationID),
		command.setActorID(actorID),
	); err != nil {
		return StartWorkCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartWorkCommandIsNotConstructed if validation fails.
func (c StartWorkCommand) Validate() error {
	return c.guard.Validate(ErrStartWorkCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order being worked.
func (c StartWorkCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the unique identifier of the location where work starts.
func (c StartWorkCommand) LocationID() kernel.UUID {
	return c.locationID
}

// ActorID returns the identity of the worker starting the work.
func (c StartWorkCommand) ActorID() string {
	return c.actorID
}

func (c *StartWorkCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartWorkCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *StartWorkCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
