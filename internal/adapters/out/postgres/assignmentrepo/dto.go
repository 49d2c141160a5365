// Package assignmentrepo provides data transfer objects and mapping functions
// for assignment persistence. An assignment row links one order to one routing
// location and carries the work state for that pairing.
package assignmentrepo

import (
	"time"

	"shopfloor/internal/core/domain/model/assignment"
	"shopfloor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment
// aggregates. The (order, location) pair is the primary key; the composite
// index on location and status serves the queue scans.
type AssignmentDTO struct {
	OrderID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	LocationID        uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_assignments_location_status"`
	Status            int       `gorm:"index:idx_assignments_location_status"`
	QueuePosition     *int
	CompletedQuantity int
	StartedAt         *time.Time
	CompletedAt       *time.Time
}

// TableName specifies the database table name for assignment entities.
// Overrides GORM's default naming convention to use "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain aggregate to its database representation.
func fromDomain(assignment *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		OrderID:           assignment.OrderID().Bytes(),
		LocationID:        assignment.LocationID().Bytes(),
		Status:            int(assignment.Status()),
		QueuePosition:     assignment.QueuePosition(),
		CompletedQuantity: assignment.CompletedQuantity(),
		StartedAt:         assignment.StartedAt(),
		CompletedAt:       assignment.CompletedAt(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate.
// Reconstructs the complete aggregate including work state and queue position
// using RestoreAssignment.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	locationID, err := kernel.UUIDFromBytes(dto.LocationID[:])
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		orderID,
		locationID,
		assignment.Status(dto.Status),
		dto.QueuePosition,
		dto.CompletedQuantity,
		dto.StartedAt,
		dto.CompletedAt,
	)
}
