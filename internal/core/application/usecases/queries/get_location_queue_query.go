package queries

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrGetLocationQueueQueryIsNotConstructed = errors.New(
	"GetLocationQueueQuery must be created via NewGetLocationQueueQuery constructor",
)

// GetLocationQueueQuery retrieves one location's work queue.
// Returns the queued assignments of non-shipped orders in local queue order,
// which operators read as their worklist.
type GetLocationQueueQuery struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLocationQueueQuery creates a query for the given location's queue.
// Validates that the location ID is valid.
func NewGetLocationQueueQuery(locationID kernel.UUID) (GetLocationQueueQuery, error) {
	query := GetLocationQueueQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setLocationID(locationID); err != nil {
		return GetLocationQueueQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLocationQueueQueryIsNotConstructed if validation fails.
func (q GetLocationQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationQueueQueryIsNotConstructed)
}

// LocationID returns the unique identifier of the location to read.
func (q GetLocationQueueQuery) LocationID() kernel.UUID {
	return q.locationID
}

func (q *GetLocationQueueQuery) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	q.locationID = locationID
	return nil
}

// GetLocationQueueQueryResponse represents one queued order at a location.
// Positions are dense 1..K within the location queue.
type GetLocationQueueQueryResponse struct {
	OrderID           kernel.UUID
	Position          int
	Rush              bool
	TotalQuantity     int
	CompletedQuantity int
}
