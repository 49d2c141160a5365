package ports

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
)

// Audit actions recorded by the advancement commands.
const (
	AuditActionStart          = "start"
	AuditActionFinish         = "finish"
	AuditActionPause          = "pause"
	AuditActionQuantityUpdate = "quantity-update"
)

// AuditEvent captures a single advancement action for the audit trail.
// The core emits events; it does not own their storage.
type AuditEvent struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	LocationID kernel.UUID
	Action     string
	ActorID    string
	Quantity   *int
	OccurredAt time.Time
}

// AuditLog defines the outbound contract for audit-trail persistence.
// Implementations append events within the caller's transaction so an
// action and its audit record commit or roll back together.
type AuditLog interface {
	// Append records a single audit event.
	Append(ctx context.Context, event AuditEvent) error
}
