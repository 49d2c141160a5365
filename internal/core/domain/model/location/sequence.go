package location

import (
	"fmt"
	"sort"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

// Sequence is a value object imposing the routing order over a set of
// locations. It answers the one question advancement needs: given a
// location, which location does the order travel to next?
//
// The order is total: routing keys are unique across the set, so the
// successor of every location is well defined. Keys need not be
// contiguous; only their relative order matters.
type Sequence struct {
	// locations is sorted ascending by routing key
	locations []*Location
}

// NewSequence builds the routing order over the given locations.
//
// Parameters:
//   - locations: The locations to order (each must be properly constructed)
//
// Returns:
//   - *Sequence: The routing order, ascending by routing key
//   - error: Validation error if a location is invalid or two locations
//     share a routing key
func NewSequence(locations []*Location) (*Sequence, error) {
	seen := make(map[int]bool, len(locations))
	sorted := make([]*Location, 0, len(locations))

	for _, loc := range locations {
		if err := loc.Validate(); err != nil {
			return nil, err
		}
		if seen[loc.Sequence()] {
			return nil, errs.NewValueIsInvalidErrorWithCause("sequence is invalid",
				fmt.Errorf("routing key %d is used by more than one location", loc.Sequence()))
		}
		seen[loc.Sequence()] = true
		sorted = append(sorted, loc)
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Sequence() < sorted[j].Sequence()
	})

	return &Sequence{locations: sorted}, nil
}

// Locations returns the locations in routing order.
// The returned slice is a copy and safe to modify.
func (s *Sequence) Locations() []*Location {
	out := make([]*Location, len(s.locations))
	copy(out, s.locations)
	return out
}

// Next returns the location the order travels to after the given one:
// the location with the smallest routing key strictly greater than the
// given location's key.
//
// Returns:
//   - (*Location, nil): The successor location
//   - (nil, nil): The given location is the last stop on the route
//   - (nil, error): The given location is not part of this sequence
func (s *Sequence) Next(locationID kernel.UUID) (*Location, error) {
	idx := -1
	for i, loc := range s.locations {
		if loc.ID().IsEqual(locationID) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, errs.NewObjectNotFoundError("location", locationID.String())
	}

	if idx+1 < len(s.locations) {
		return s.locations[idx+1], nil
	}
	return nil, nil
}
