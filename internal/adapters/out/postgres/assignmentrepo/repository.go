package assignmentrepo

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/assignment"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"assignment", pairKey(aggregate.OrderID(), aggregate.LocationID()), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// Update saves an existing assignment to the database.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Select("*") writes zero-valued columns too; a queue position cleared
	// on start must reach the database as NULL.
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("order_id = ? AND location_id = ?", dto.OrderID, dto.LocationID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// Remove deletes the assignment for the given pair.
func (r *GormAssignmentRepository) Remove(ctx context.Context, orderID kernel.UUID, locationID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), locationID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("order_id = ? AND location_id = ?", orderID.Bytes(), locationID.Bytes()).
		Delete(&AssignmentDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", pairKey(orderID, locationID))
	}

	return nil
}

// Get retrieves the assignment for the given pair.
func (r *GormAssignmentRepository) Get(
	ctx context.Context, orderID kernel.UUID, locationID kernel.UUID,
) (*assignment.Assignment, error) {
	if err := errors.Join(orderID.Validate(), locationID.Validate()); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND location_id = ?", orderID.Bytes(), locationID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", pairKey(orderID, locationID))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOrder retrieves every assignment of the given order.
func (r *GormAssignmentRepository) GetAllForOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]*assignment.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllInQueueAtLocation retrieves the assignments currently queued at the
// given location.
func (r *GormAssignmentRepository) GetAllInQueueAtLocation(
	ctx context.Context, locationID kernel.UUID,
) ([]*assignment.Assignment, error) {
	return r.getAllAtLocationInStatus(ctx, locationID, assignment.InQueue)
}

// GetAllNotStartedAtLocation retrieves the assignments at the given location
// that have not entered the queue yet.
func (r *GormAssignmentRepository) GetAllNotStartedAtLocation(
	ctx context.Context, locationID kernel.UUID,
) ([]*assignment.Assignment, error) {
	return r.getAllAtLocationInStatus(ctx, locationID, assignment.NotStarted)
}

func (r *GormAssignmentRepository) getAllAtLocationInStatus(
	ctx context.Context, locationID kernel.UUID, status assignment.Status,
) ([]*assignment.Assignment, error) {
	if err := locationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "location_id = ? AND status = ?", locationID.Bytes(), int(status)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []AssignmentDTO) ([]*assignment.Assignment, error) {
	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// pairKey renders the composite identifier for error messages.
func pairKey(orderID kernel.UUID, locationID kernel.UUID) string {
	return orderID.String() + "@" + locationID.String()
}
