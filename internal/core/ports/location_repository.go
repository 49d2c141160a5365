package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for the location
// catalog. Locations are immutable for scheduling once created, so the
// contract has no update method.
type LocationRepository interface {
	// Add persists a new location aggregate to storage.
	// The location must be valid; a duplicate routing sequence key is a
	// conflict surfaced by the store.
	Add(ctx context.Context, aggregate *location.Location) error

	// Get retrieves a location aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)

	// GetAll retrieves the complete location catalog ordered by routing
	// sequence. The result is the input for building a routing Sequence.
	GetAll(ctx context.Context) ([]*location.Location, error)
}
