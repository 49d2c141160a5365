package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var (
	ErrCreateLocationCommandIsNotConstructed = errors.New(
		"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
	)
	ErrLocationNameIsRequired = errors.New("location name is required")
	ErrSequenceIsInvalid      = errors.New("sequence must not be negative")
	ErrMultiplierIsInvalid    = errors.New("count multiplier must be at least 1")
)

// CreateLocationCommand represents a request to register a processing
// location in the routing catalog.
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	locationID      kernel.UUID
	name            string
	sequence        int
	isPrimary       bool
	skipAutoQueue   bool
	countMultiplier int
	noCount         bool

	guard guard.ConstructorGuard
}

// NewCreateLocationCommand creates a command to register a location.
// Validates the identifier, name, routing sequence, and multiplier; the
// boolean flags carry no constraints.
func NewCreateLocationCommand(
	locationID kernel.UUID,
	name string,
	sequence int,
	isPrimary bool,
	skipAutoQueue bool,
	countMultiplier int,
	noCount bool,
) (CreateLocationCommand, error) {
	command := CreateLocationCommand{
		isPrimary:     isPrimary,
		skipAutoQueue: skipAutoQueue,
		noCount:       noCount,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLocationID(locationID),
		command.setName(name),
		command.setSequence(sequence),
		command.setCountMultiplier(countMultiplier),
	); err != nil {
		return CreateLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateLocationCommandIsNotConstructed if validation fails.
func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

// LocationID returns the unique identifier for the location.
func (c CreateLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Name returns the human-readable location name.
func (c CreateLocationCommand) Name() string {
	return c.name
}

// Sequence returns the location's routing key.
func (c CreateLocationCommand) Sequence() int {
	return c.sequence
}

// IsPrimary reports whether the auto queue rule applies at the location.
func (c CreateLocationCommand) IsPrimary() bool {
	return c.isPrimary
}

// SkipAutoQueue reports whether the auto queue rule is suppressed.
func (c CreateLocationCommand) SkipAutoQueue() bool {
	return c.skipAutoQueue
}

// CountMultiplier returns the piece count scale factor.
func (c CreateLocationCommand) CountMultiplier() int {
	return c.countMultiplier
}

// NoCount reports whether the location is excluded from piece accounting.
func (c CreateLocationCommand) NoCount() bool {
	return c.noCount
}

func (c *CreateLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *CreateLocationCommand) setName(name string) error {
	if name == "" {
		return ErrLocationNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateLocationCommand) setSequence(sequence int) error {
	if sequence < 0 {
		return ErrSequenceIsInvalid
	}

	c.sequence = sequence
	return nil
}

func (c *CreateLocationCommand) setCountMultiplier(countMultiplier int) error {
	if countMultiplier < 1 {
		return ErrMultiplierIsInvalid
	}

	c.countMultiplier = countMultiplier
	return nil
}
