// Package ports defines the contracts between the core and infrastructure:
// repositories, the unit of work, and outbound collaborators. These interfaces
// establish the boundary of the domain layer, enabling dependency inversion
// and testability.
package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/assignment"
	"shopfloor/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assignment
// aggregates. An assignment is identified by the composite key
// (order ID, location ID).
type AssignmentRepository interface {
	// Add persists a new assignment aggregate to storage.
	// The assignment must be valid and the pair must not already exist.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment aggregate.
	// The assignment must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Remove deletes the assignment for the given pair.
	// Returns ObjectNotFoundError if no row exists for the pair.
	Remove(ctx context.Context, orderID kernel.UUID, locationID kernel.UUID) error

	// Get retrieves the assignment for the given pair.
	// Returns ObjectNotFoundError if no row exists for the pair.
	Get(ctx context.Context, orderID kernel.UUID, locationID kernel.UUID) (*assignment.Assignment, error)

	// GetAllForOrder retrieves every assignment of the given order,
	// regardless of status. Used for order completion checks.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.Assignment, error)

	// GetAllInQueueAtLocation retrieves the assignments currently queued at
	// the given location. These rows form the location's working queue.
	//
	// Business Rules:
	//   - Only assignments in InQueue status are returned
	//   - Assignments of shipped orders are excluded by the caller, not here
	//   - No ordering is guaranteed; ranking is a domain service concern
	//
	// Example:
	//   queued, err := repo.GetAllInQueueAtLocation(ctx, locationID)
	//   if err != nil {
	//       return fmt.Errorf("failed to load location queue: %w", err)
	//   }
	//   for _, a := range queued {
	//       fmt.Printf("queued: %s\n", a.OrderID())
	//   }
	GetAllInQueueAtLocation(ctx context.Context, locationID kernel.UUID) ([]*assignment.Assignment, error)

	// GetAllNotStartedAtLocation retrieves the assignments at the given
	// location that have not entered the queue yet. These are the
	// candidates for auto-promotion at primary locations.
	GetAllNotStartedAtLocation(ctx context.Context, locationID kernel.UUID) ([]*assignment.Assignment, error)
}
