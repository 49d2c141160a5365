// Package auditrepo persists the advancement audit trail. Events are
// append-only rows; nothing ever updates or deletes them.
package auditrepo

import (
	"time"

	"shopfloor/internal/core/ports"

	"github.com/google/uuid"
)

// AuditEventDTO represents the database structure for a single audit row.
type AuditEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	LocationID uuid.UUID `gorm:"type:uuid"`
	Action     string
	ActorID    string
	Quantity   *int
	OccurredAt time.Time
}

// TableName specifies the database table name for audit events.
func (AuditEventDTO) TableName() string {
	return "audit_events"
}

// fromDomain converts an audit event to its database representation.
func fromDomain(event ports.AuditEvent) AuditEventDTO {
	return AuditEventDTO{
		ID:         event.ID.Bytes(),
		OrderID:    event.OrderID.Bytes(),
		LocationID: event.LocationID.Bytes(),
		Action:     event.Action,
		ActorID:    event.ActorID,
		Quantity:   event.Quantity,
		OccurredAt: event.OccurredAt,
	}
}
