package location

import (
	"errors"
	"fmt"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

// Domain errors for location operations.
var (
	// ErrNameIsRequired is returned when attempting to create a location without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLocationIsNotConstructed is returned when using an improperly initialized Location.
	ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")
)

// Location represents a physical processing location on the shopfloor.
// It is an aggregate root that carries the routing key ordering locations
// along the production flow and the flags steering queue behavior.
//
// Key responsibilities:
//   - Managing location identity (ID, name)
//   - Holding the routing key that orders locations along the flow
//   - Steering the auto queue rule through the primary and skip flags
//   - Carrying quantity-accounting hints (count multiplier, no count)
//
// Business rules:
//   - Location must have a valid UUID and a non-empty name
//   - The routing key is non-negative; keys need not be contiguous but are
//     unique across locations
//   - The count multiplier is at least 1
//   - Locations are immutable for scheduling once created
type Location struct {
	// id uniquely identifies the location
	id kernel.UUID
	// name is the human-readable name of the location
	name string
	// sequence is the routing key ordering locations along the flow
	sequence int
	// isPrimary marks workflow entry points where the auto queue rule applies
	isPrimary bool
	// skipAutoQueue suppresses the auto queue rule even on primary locations
	skipAutoQueue bool
	// countMultiplier scales reported piece counts for this location
	countMultiplier int
	// noCount excludes this location from piece accounting
	noCount bool
	// guard ensures the location was properly constructed
	guard guard.ConstructorGuard
}

// NewLocation creates a new Location with the specified parameters.
// This is the only way to create a valid Location instance; restoring a
// persisted location uses the same constructor since locations carry no
// derived state.
//
// Parameters:
//   - id: Unique identifier for the location (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - sequence: Routing key along the production flow (must be non-negative)
//   - isPrimary: Whether the auto queue rule applies here
//   - skipAutoQueue: Whether to suppress the auto queue rule
//   - countMultiplier: Piece count scale factor (must be at least 1)
//   - noCount: Whether to exclude the location from piece accounting
//
// Returns:
//   - *Location: A fully initialized location
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
func NewLocation(
	id kernel.UUID,
	name string,
	sequence int,
	isPrimary bool,
	skipAutoQueue bool,
	countMultiplier int,
	noCount bool,
) (*Location, error) {
	location := &Location{
		isPrimary:     isPrimary,
		skipAutoQueue: skipAutoQueue,
		noCount:       noCount,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		location.setID(id),
		location.setName(name),
		location.setSequence(sequence),
		location.setCountMultiplier(countMultiplier),
	); err != nil {
		return nil, err
	}

	return location, nil
}

// Validate checks if the Location was properly constructed using the NewLocation constructor.
// The zero value of Location is invalid and will fail this validation.
func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// IsEqual compares two locations for equality based on their unique identifiers.
func (l *Location) IsEqual(other *Location) bool {
	if other == nil {
		return false
	}
	return l.id.IsEqual(other.id)
}

// ID returns the location's unique identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Name returns the human-readable name of the location.
func (l *Location) Name() string {
	return l.name
}

// Sequence returns the routing key ordering locations along the flow.
func (l *Location) Sequence() int {
	return l.sequence
}

// IsPrimary reports whether the location is a workflow entry point.
func (l *Location) IsPrimary() bool {
	return l.isPrimary
}

// SkipAutoQueue reports whether the auto queue rule is suppressed here.
func (l *Location) SkipAutoQueue() bool {
	return l.skipAutoQueue
}

// CountMultiplier returns the piece count scale factor for this location.
func (l *Location) CountMultiplier() int {
	return l.countMultiplier
}

// NoCount reports whether the location is excluded from piece accounting.
func (l *Location) NoCount() bool {
	return l.noCount
}

// AutoQueueApplies reports whether consistently positioned orders are pulled
// into this location's queue automatically. The rule applies on primary
// locations unless explicitly suppressed.
func (l *Location) AutoQueueApplies() bool {
	return l.isPrimary && !l.skipAutoQueue
}

// setID validates and sets the location's unique identifier.
// This is a private method used only during construction.
func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

// setName validates and sets the location's name.
// This is a private method used only during construction.
func (l *Location) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	l.name = name
	return nil
}

// setSequence validates and sets the routing key.
// This is a private method used only during construction.
func (l *Location) setSequence(sequence int) error {
	if sequence < 0 {
		return errs.NewValueIsInvalidErrorWithCause("sequence is invalid",
			fmt.Errorf("%d is less than 0", sequence))
	}
	l.sequence = sequence
	return nil
}

// setCountMultiplier validates and sets the piece count scale factor.
// This is a private method used only during construction.
func (l *Location) setCountMultiplier(countMultiplier int) error {
	if countMultiplier < 1 {
		return errs.NewValueIsInvalidErrorWithCause("countMultiplier is invalid",
			fmt.Errorf("%d is less than 1", countMultiplier))
	}
	l.countMultiplier = countMultiplier
	return nil
}
