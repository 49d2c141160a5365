// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shopfloor/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LocationRepoFactory provides access to the location repository within a transaction.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// AuditLogFactory provides access to the audit log within a transaction.
	AuditLogFactory interface {
		AuditLog() ports.AuditLog
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that reorder the global queue.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LocationUoW manages transactions for location-only operations.
	LocationUoW interface {
		TxManager
		LocationRepoFactory
	}

	// LocationUoWFactory creates new location unit of work instances.
	LocationUoWFactory interface {
		Create() LocationUoW
	}

	// QueueUoW manages transactions that touch orders and their assignments.
	// Used by commands that rework a location queue without consulting the
	// location catalog.
	QueueUoW interface {
		TxManager
		OrderRepoFactory
		AssignmentRepoFactory
	}

	// QueueUoWFactory creates new queue unit of work instances.
	QueueUoWFactory interface {
		Create() QueueUoW
	}

	// WorkUoW manages transactions for assignment-only operations with an
	// audit trail. Used by commands that change work state in place.
	WorkUoW interface {
		TxManager
		AssignmentRepoFactory
		AuditLogFactory
	}

	// WorkUoWFactory creates new work unit of work instances.
	WorkUoWFactory interface {
		Create() WorkUoW
	}

	// UoW manages transactions across all aggregates and the audit trail.
	// Used for commands that coordinate routing, queue state, and orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   ordersRepo := uow.OrderRepository()
	//   assignmentsRepo := uow.AssignmentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		LocationRepoFactory
		AssignmentRepoFactory
		AuditLogFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
