package queries

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrGetGlobalQueueQueryIsNotConstructed = errors.New(
	"GetGlobalQueueQuery must be created via NewGetGlobalQueueQuery constructor",
)

// GetGlobalQueueQuery retrieves the factory-wide production queue.
// Returns every non-shipped order in rank order for planning and monitoring.
//
// Example:
//
//	query := NewGetGlobalQueueQuery()
//	handler := NewGetGlobalQueueQueryHandler(db)
//
//	queue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get the global queue: %w", err)
//	}
//
//	for _, entry := range queue {
//	    fmt.Printf("%d. order %s (rush: %v)\n", entry.Position, entry.ID, entry.Rush)
//	}
type GetGlobalQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetGlobalQueueQuery creates a query to retrieve the global queue.
// This is a parameterless query that fetches all non-shipped orders.
func NewGetGlobalQueueQuery() GetGlobalQueueQuery {
	return GetGlobalQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetGlobalQueueQueryIsNotConstructed if validation fails.
func (q GetGlobalQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetGlobalQueueQueryIsNotConstructed)
}

// GetGlobalQueueQueryResponse represents one order's slot in the global queue.
// Positions are dense 1..N over all non-shipped orders; rush orders occupy the
// leading positions.
type GetGlobalQueueQueryResponse struct {
	ID              kernel.UUID
	Position        int
	Rush            bool
	RushSetAt       *time.Time
	TotalQuantity   int
	ShippedQuantity int
	CreatedAt       time.Time
}
