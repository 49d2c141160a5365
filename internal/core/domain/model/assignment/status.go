package assignment

import (
	"fmt"

	"shopfloor/internal/pkg/errs"
)

// Status represents the work state of an assignment at a location.
// It implements a state machine with defined transitions to ensure
// work progresses through the correct shopfloor workflow.
//
// State transitions:
//
//	NotStarted ──> InQueue ──> InProgress ──> Done
//	                              │  ▲
//	                              ▼  │
//	                             Paused
//	                  (start resumes paused work)
//
// Done is a final state. Starting work is permitted straight from
// NotStarted, finishing is permitted from any live state, and restarting
// in-progress work is allowed so repeated start requests stay harmless.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// NotStarted is the initial status when an order is routed to a location.
	// Assignments in this status are not yet visible in the location queue.
	NotStarted

	// InQueue indicates the assignment waits in the location queue
	// and holds a queue position.
	InQueue

	// InProgress indicates an operator is actively working the assignment.
	InProgress

	// Paused indicates work was interrupted and can be resumed.
	Paused

	// Done indicates the work at this location completed.
	// This is a final state with no further transitions allowed.
	Done
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		NotStarted: "NotStarted",
		InQueue:    "InQueue",
		InProgress: "InProgress",
		Paused:     "Paused",
		Done:       "Done",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		NotStarted: "NotStarted",
		InQueue:    "InQueue",
		InProgress: "InProgress",
		Paused:     "Paused",
		Done:       "Done",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: NotStarted, InQueue, InProgress, Paused, Done.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "NotStarted", "InQueue", "InProgress", "Paused", or "Done" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Enqueue transitions the status to InQueue.
//
// Valid transitions:
//   - NotStarted -> InQueue (the assignment enters the location queue)
//
// Invalid transitions:
//   - InQueue, InProgress, Paused (already past the queue boundary)
//   - Done (work completed), Unknown (invalid initial state)
//
// Returns:
//   - (InQueue, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Enqueue() (Status, error) {
	if s != NotStarted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to enqueue", s.String()),
		)
	}

	return InQueue, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - NotStarted -> InProgress (work may start without queueing)
//   - InQueue -> InProgress (work pulled from the queue)
//   - Paused -> InProgress (work resumed)
//   - InProgress -> InProgress (repeated start requests are harmless)
//
// Invalid transitions:
//   - Done -> InProgress (completed work cannot restart)
//   - Unknown -> InProgress (invalid initial state)
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Start() (Status, error) {
	if s != NotStarted && s != InQueue && s != Paused && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}

	return InProgress, nil
}

// Finish transitions the status to Done.
//
// Valid transitions:
//   - NotStarted, InQueue, InProgress, Paused -> Done
//
// Work can be closed from any live state: operators commonly report a
// finished step without having started it in the system first.
//
// Invalid transitions:
//   - Done -> Done (callers treat repeated finishes as idempotent and
//     must not re-run the transition)
//   - Unknown -> Done (invalid initial state)
//
// Returns:
//   - (Done, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Finish() (Status, error) {
	if s != NotStarted && s != InQueue && s != InProgress && s != Paused {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to finish", s.String()),
		)
	}

	return Done, nil
}

// Pause transitions the status to Paused.
//
// Valid transitions:
//   - InProgress -> Paused (active work interrupted)
//
// Invalid transitions:
//   - NotStarted, InQueue (nothing is running)
//   - Paused -> Paused (already paused)
//   - Done -> Paused (completed work cannot pause)
//   - Unknown -> Paused (invalid initial state)
//
// Returns:
//   - (Paused, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Pause() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pause", s.String()),
		)
	}

	return Paused, nil
}
