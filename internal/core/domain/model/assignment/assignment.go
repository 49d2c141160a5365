package assignment

import (
	"errors"
	"fmt"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

// Domain errors for assignment operations.
var (
	// ErrAssignmentIsNotConstructed is returned when using an improperly initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
)

// Assignment represents the routing of one production order through one
// processing location. It is the scheduling unit the location queues are
// built from: the pair (order, location) identifies it, the status tracks
// the work state, and the queue position orders it among its peers.
//
// Key responsibilities:
//   - Tracking the work state at a location (NotStarted through Done)
//   - Holding the 1-based position in the location queue while InQueue
//   - Recording start/finish timestamps and the completed piece count
//
// Business rules:
//   - Both identifiers must be valid UUIDs
//   - The queue position, when present, is at least 1
//   - Starting and finishing work discard the queue position
//   - The completed piece count is never negative
//
// Assignments for downstream locations are created on demand when work at
// the previous location starts or finishes, so an order's routing can grow
// while it travels the floor.
type Assignment struct {
	// orderID identifies the routed production order
	orderID kernel.UUID
	// locationID identifies the processing location
	locationID kernel.UUID
	// status is the work state at this location
	status Status
	// queuePosition is the 1-based rank in the location queue (nil outside the queue)
	queuePosition *int
	// completedQuantity is the piece count reported for this location
	completedQuantity int
	// startedAt is when work last started (nil until started)
	startedAt *time.Time
	// completedAt is when work finished (nil until done)
	completedAt *time.Time
	// guard ensures the assignment was properly constructed
	guard guard.ConstructorGuard
}

// NewAssignment creates a new Assignment routing an order through a location.
// Fresh assignments start in NotStarted with no queue position; they enter the
// location queue through Enqueue or through the auto queue rule on primary
// locations.
//
// Parameters:
//   - orderID: Identifier of the routed order (must be valid UUID)
//   - locationID: Identifier of the processing location (must be valid UUID)
//
// Returns:
//   - *Assignment: A fully initialized assignment in NotStarted state
//   - error: Validation error if any identifier is invalid
func NewAssignment(orderID kernel.UUID, locationID kernel.UUID) (*Assignment, error) {
	assignment := &Assignment{
		status: NotStarted,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignment.setOrderID(orderID),
		assignment.setLocationID(locationID),
	); err != nil {
		return nil, err
	}

	return assignment, nil
}

// RestoreAssignment reconstructs an Assignment aggregate from persistent storage.
// Unlike NewAssignment, which creates fresh assignments in NotStarted state,
// this constructor restores an assignment to its previously persisted work state.
//
// Parameters:
//   - orderID: Identifier of the routed order
//   - locationID: Identifier of the processing location
//   - status: Persisted work state
//   - queuePosition: Persisted queue rank (nil outside the queue)
//   - completedQuantity: Reported piece count
//   - startedAt: When work last started (nil until started)
//   - completedAt: When work finished (nil until done)
//
// Returns:
//   - *Assignment: Restored assignment aggregate
//   - error: Validation error if the persisted state is inconsistent
func RestoreAssignment(
	orderID kernel.UUID,
	locationID kernel.UUID,
	status Status,
	queuePosition *int,
	completedQuantity int,
	startedAt *time.Time,
	completedAt *time.Time,
) (*Assignment, error) {
	assignment := &Assignment{
		startedAt:   startedAt,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignment.setOrderID(orderID),
		assignment.setLocationID(locationID),
		assignment.setStatus(status),
		assignment.setQueuePosition(queuePosition),
		assignment.setCompletedQuantity(completedQuantity),
	); err != nil {
		return nil, err
	}

	return assignment, nil
}

// Validate checks if the Assignment was properly constructed using a constructor.
// The zero value of Assignment is invalid and will fail this validation.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// IsEqual compares two assignments by their composite identity.
// Assignments are equal when they route the same order through the same location.
func (a *Assignment) IsEqual(other *Assignment) bool {
	if other == nil {
		return false
	}
	return a.orderID.IsEqual(other.orderID) && a.locationID.IsEqual(other.locationID)
}

// OrderID returns the identifier of the routed order.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// LocationID returns the identifier of the processing location.
func (a *Assignment) LocationID() kernel.UUID {
	return a.locationID
}

// Status returns the work state at this location.
func (a *Assignment) Status() Status {
	return a.status
}

// QueuePosition returns the 1-based rank in the location queue.
// Returns nil while the assignment is outside the queue.
func (a *Assignment) QueuePosition() *int {
	return a.queuePosition
}

// CompletedQuantity returns the piece count reported for this location.
func (a *Assignment) CompletedQuantity() int {
	return a.completedQuantity
}

// StartedAt returns when work last started. Returns nil until started.
func (a *Assignment) StartedAt() *time.Time {
	return a.startedAt
}

// CompletedAt returns when work finished. Returns nil until done.
func (a *Assignment) CompletedAt() *time.Time {
	return a.completedAt
}

// Enqueue moves the assignment into the location queue at the given position.
//
// This method enforces the following business rules:
//   - Only NotStarted assignments can enter the queue
//   - The position must be at least 1
//
// The caller picks the position; the queue recompute that follows normalizes
// positions to a dense 1..N run.
//
// Returns:
//   - nil on success
//   - error if the transition or position is invalid
func (a *Assignment) Enqueue(position int) error {
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause("queuePosition is invalid",
			fmt.Errorf("%d is not greater than 0", position))
	}

	newStatus, err := a.status.Enqueue()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.queuePosition = &position
	return nil
}

// SetQueuePosition moves an already queued assignment to a new position.
//
// This method enforces the following business rules:
//   - The assignment must currently be InQueue
//   - The position must be at least 1
//
// Returns:
//   - nil on success
//   - error if the assignment is outside the queue or the position is invalid
func (a *Assignment) SetQueuePosition(position int) error {
	if a.status != InQueue {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to hold a queue position", a.status.String()))
	}
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause("queuePosition is invalid",
			fmt.Errorf("%d is not greater than 0", position))
	}

	a.queuePosition = &position
	return nil
}

// ClearQueuePosition removes the assignment's queue rank without touching
// its status. Used when an order leaves the active scheduling set.
func (a *Assignment) ClearQueuePosition() {
	a.queuePosition = nil
}

// Start begins or resumes work on the assignment.
//
// This method enforces the following business rules:
//   - The timestamp must not be zero
//   - Completed work cannot restart
//   - Starting in-progress work restamps the start time
//
// Starting removes the assignment from the queue: an assignment being worked
// no longer occupies a queue slot.
//
// Parameters:
//   - at: The moment work started
//
// Returns:
//   - nil on success
//   - error if the timestamp is missing or the transition is invalid
func (a *Assignment) Start(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("startedAt")
	}

	newStatus, err := a.status.Start()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.startedAt = &at
	a.queuePosition = nil
	return nil
}

// Finish completes work on the assignment, recording the reported piece count.
//
// This method enforces the following business rules:
//   - The timestamp must not be zero
//   - The piece count is never negative
//   - Already completed work cannot finish again; callers treat repeated
//     finish requests as idempotent and skip the call
//
// Finishing removes the assignment from the queue.
//
// Parameters:
//   - quantity: Completed piece count reported by the operator
//   - at: The moment work finished
//
// Returns:
//   - nil on success
//   - error if a parameter or the transition is invalid
func (a *Assignment) Finish(quantity int, at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("completedAt")
	}
	if err := a.validateCompletedQuantity(quantity); err != nil {
		return err
	}

	newStatus, err := a.status.Finish()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.completedQuantity = quantity
	a.completedAt = &at
	a.queuePosition = nil
	return nil
}

// Pause interrupts in-progress work so it can be resumed later via Start.
//
// Returns:
//   - nil on success
//   - error if no work is in progress
func (a *Assignment) Pause() error {
	newStatus, err := a.status.Pause()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

// RecordCompletedQuantity updates the reported piece count without changing
// the work state. Operators use this to report progress mid-work.
//
// Returns:
//   - nil on success
//   - error if the piece count is negative
func (a *Assignment) RecordCompletedQuantity(quantity int) error {
	if err := a.validateCompletedQuantity(quantity); err != nil {
		return err
	}

	a.completedQuantity = quantity
	return nil
}

// validateCompletedQuantity rejects negative piece counts.
func (a *Assignment) validateCompletedQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("completedQuantity is invalid",
			fmt.Errorf("%d is less than 0", quantity))
	}
	return nil
}

// setOrderID validates and sets the routed order identifier.
// This is a private method used only during construction.
func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

// setLocationID validates and sets the processing location identifier.
// This is a private method used only during construction.
func (a *Assignment) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	a.locationID = locationID
	return nil
}

// setStatus validates and sets the persisted work state.
// This is a private method used only during restoration.
func (a *Assignment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

// setQueuePosition validates and sets the persisted queue rank.
// This is a private method used only during restoration.
func (a *Assignment) setQueuePosition(position *int) error {
	if position != nil && *position < 1 {
		return errs.NewValueIsInvalidErrorWithCause("queuePosition is invalid",
			fmt.Errorf("%d is not greater than 0", *position))
	}
	a.queuePosition = position
	return nil
}

// setCompletedQuantity validates and sets the persisted piece count.
// This is a private method used only during restoration.
func (a *Assignment) setCompletedQuantity(quantity int) error {
	if err := a.validateCompletedQuantity(quantity); err != nil {
		return err
	}
	a.completedQuantity = quantity
	return nil
}
