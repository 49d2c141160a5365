package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrUpdateCompletedQuantityCommandIsNotConstructed = errors.New(
	"UpdateCompletedQuantityCommand must be created via NewUpdateCompletedQuantityCommand constructor",
)

// UpdateCompletedQuantityCommand represents a correction of the completed
// piece count at a location, without any state transition.
type UpdateCompletedQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	locationID        kernel.UUID
	completedQuantity int
	actorID           string

	guard guard.ConstructorGuard
}

// NewUpdateCompletedQuantityCommand creates a command to correct a completed
// piece count. Validates both identifiers, that the quantity is not
// negative, and that the acting worker is named.
func NewUpdateCompletedQuantityCommand(
	orderID kernel.UUID,
	locationID kernel.UUID,
	completedQuantity int,
	actorID string,
) (UpdateCompletedQuantityCommand, error) {
	command := UpdateCompletedQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setLocationID(locationID),
		command.setCompletedQuantity(completedQuantity),
		command.setActorID(actorID),
	); err != nil {
		return UpdateCompletedQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateCompletedQuantityCommandIsNotConstructed if validation fails.
func (c UpdateCompletedQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCompletedQuantityCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the corrected order.
func (c UpdateCompletedQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the unique identifier of the corrected location.
func (c UpdateCompletedQuantityCommand) LocationID() kernel.UUID {
	return c.locationID
}

// CompletedQuantity returns the corrected completed piece count.
func (c UpdateCompletedQuantityCommand) CompletedQuantity() int {
	return c.completedQuantity
}

// ActorID returns the identity of the worker reporting the correction.
func (c UpdateCompletedQuantityCommand) ActorID() string {
	return c.actorID
}

func (c *UpdateCompletedQuantityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateCompletedQuantityCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *UpdateCompletedQuantityCommand) setCompletedQuantity(completedQuantity int) error {
	if completedQuantity < 0 {
		return ErrCompletedQuantityIsInvalid
	}

	c.completedQuantity = completedQuantity
	return nil
}

func (c *UpdateCompletedQuantityCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
