package auditrepo

import (
	"context"
	"errors"

	"shopfloor/internal/core/ports"

	"gorm.io/gorm"
)

// GormAuditLog implements AuditLog using GORM.
// Audit rows are not aggregates; there is no tracking and no read path here.
type GormAuditLog struct {
	db *gorm.DB
}

// NewGormAuditLog creates a new GORM audit log.
func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

// Append records a single audit event.
func (l *GormAuditLog) Append(ctx context.Context, event ports.AuditEvent) error {
	if err := errors.Join(
		event.ID.Validate(),
		event.OrderID.Validate(),
		event.LocationID.Validate(),
	); err != nil {
		return err
	}

	dto := fromDomain(event)
	return l.db.WithContext(ctx).Create(&dto).Error
}
