package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for production order
// aggregates. Provides methods for storing, retrieving, and querying orders
// based on their shipping state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its rush state and queue position.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves every order that has not shipped in full.
	// These orders form the global queue; fully shipped orders never
	// participate in ranking again.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
