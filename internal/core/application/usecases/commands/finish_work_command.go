package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var (
	ErrFinishWorkCommandIsNotConstructed = errors.New(
		"FinishWorkCommand must be created via NewFinishWorkCommand constructor",
	)
	ErrCompletedQuantityIsInvalid = errors.New("completed quantity must not be negative")
)

// FinishWorkCommand represents a worker finishing an order at a location,
// reporting the completed piece count. Finishing stages the order at the
// next location and may complete the whole order.
type FinishWorkCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	locationID        kernel.UUID
	completedQuantity int
	actorID           string

	guard guard.ConstructorGuard
}

// NewFinishWorkCommand creates a command to finish work on an order.
// Validates both identifiers, that the quantity is not negative, and that
// the acting worker is named.
func NewFinishWorkCommand(
	orderID kernel.UUID,
	locationID kernel.UUID,
	completedQuantity int,
	actorID string,
) (FinishWorkCommand, error) {
	command := FinishWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setLocationID(locationID),
		command.setCompletedQuantity(completedQuantity),
		command.setActorID(actorID),
	); err != nil {
		return FinishWorkCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFinishWorkCommandIsNotConstructed if validation fails.
func (c FinishWorkCommand) Validate() error {
	return c.guard.Validate(ErrFinishWorkCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order being finished.
func (c FinishWorkCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LocationID returns the unique identifier of the location where work ends.
func (c FinishWorkCommand) LocationID() kernel.UUID {
	return c.locationID
}

// CompletedQuantity returns the reported completed piece count.
func (c FinishWorkCommand) CompletedQuantity() int {
	return c.completedQuantity
}

// ActorID returns the identity of the worker finishing the work.
func (c FinishWorkCommand) ActorID() string {
	return c.actorID
}

func (c *FinishWorkCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FinishWorkCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *FinishWorkCommand) setCompletedQuantity(completedQuantity int) error {
	if completedQuantity < 0 {
		return ErrCompletedQuantityIsInvalid
	}

	c.completedQuantity = completedQuantity
	return nil
}

func (c *FinishWorkCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
