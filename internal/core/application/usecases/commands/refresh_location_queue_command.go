package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrRefreshLocationQueueCommandIsNotConstructed = errors.New(
	"RefreshLocationQueueCommand must be created via NewRefreshLocationQueueCommand constructor",
)

// RefreshLocationQueueCommand represents a request to bring one location's
// queue up to date: waiting orders are auto-promoted where the rule applies,
// then positions are rewritten densely. Issued before every queue read.
type RefreshLocationQueueCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRefreshLocationQueueCommand creates a command to refresh a location
// queue. Validates the location ID.
func NewRefreshLocationQueueCommand(locationID kernel.UUID) (RefreshLocationQueueCommand, error) {
	command := RefreshLocationQueueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setLocationID(locationID); err != nil {
		return RefreshLocationQueueCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshLocationQueueCommandIsNotConstructed if validation fails.
func (c RefreshLocationQueueCommand) Validate() error {
	return c.guard.Validate(ErrRefreshLocationQueueCommandIsNotConstructed)
}

// LocationID returns the unique identifier of the location to refresh.
func (c RefreshLocationQueueCommand) LocationID() kernel.UUID {
	return c.locationID
}

func (c *RefreshLocationQueueCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}
