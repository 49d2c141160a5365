package services

import (
	"fmt"
	"sort"

	"shopfloor/internal/core/domain/model/assignment"
	"shopfloor/internal/core/domain/model/location"
	"shopfloor/internal/pkg/errs"
)

// AutoPromotion is a domain service implementing the auto queue rule: on a
// primary location, orders that already hold a global queue position do not
// wait for a manual enqueue; their assignments are pulled into the location
// queue automatically.
//
// The rule applies lazily whenever a location queue is refreshed and during
// the central recompute sweep, so a primary location's queue always reflects
// the global queue without operator action.
type AutoPromotion struct{}

// NewAutoPromotion creates a new AutoPromotion instance.
//
// Returns:
//   - AutoPromotion: A new instance ready for promotion operations
func NewAutoPromotion() AutoPromotion {
	return AutoPromotion{}
}

// Promote moves the eligible waiting assignments of one location into its
// queue, appending them after the current tail in global queue order. The
// recompute that follows normalizes the full queue.
//
// An assignment is eligible when its order is active and holds a global
// queue position. Waiting assignments of unranked or shipped orders stay
// untouched. On locations where the auto queue rule does not apply the
// call is a no-op.
//
// Parameters:
//   - loc: The location whose queue is refreshed
//   - waiting: The location's NotStarted assignments paired with their orders
//   - maxQueuePosition: The current queue tail (0 for an empty queue)
//
// Returns:
//   - []QueueEntry: The entries promoted into the queue
//   - error: Validation error if an input is invalid
func (p AutoPromotion) Promote(loc *location.Location, waiting []QueueEntry, maxQueuePosition int) ([]QueueEntry, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if maxQueuePosition < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("maxQueuePosition is invalid",
			fmt.Errorf("%d is less than 0", maxQueuePosition))
	}

	if !loc.AutoQueueApplies() {
		return nil, nil
	}

	eligible := make([]QueueEntry, 0, len(waiting))
	for _, e := range waiting {
		if err := p.validateWaitingEntry(loc, e); err != nil {
			return nil, err
		}
		if !e.Order.IsActive() || e.Order.GlobalQueuePosition() == nil {
			continue
		}
		eligible = append(eligible, e)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return *eligible[i].Order.GlobalQueuePosition() < *eligible[j].Order.GlobalQueuePosition()
	})

	for i, e := range eligible {
		if err := e.Assignment.Enqueue(maxQueuePosition + i + 1); err != nil {
			return nil, err
		}
	}

	return eligible, nil
}

// validateWaitingEntry checks that an entry can take part in promotion.
func (p AutoPromotion) validateWaitingEntry(loc *location.Location, e QueueEntry) error {
	if err := e.Assignment.Validate(); err != nil {
		return err
	}
	if err := e.Order.Validate(); err != nil {
		return err
	}
	if !e.Assignment.OrderID().IsEqual(e.Order.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("entries are invalid",
			fmt.Errorf("assignment of order %s is paired with order %s", e.Assignment.OrderID(), e.Order.ID()))
	}
	if !e.Assignment.LocationID().IsEqual(loc.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("entries are invalid",
			fmt.Errorf("assignment of order %s belongs to another location", e.Assignment.OrderID()))
	}
	if e.Assignment.Status() != assignment.NotStarted {
		return errs.NewValueIsInvalidErrorWithCause("entries are invalid",
			fmt.Errorf("assignment of order %s is %s, not NotStarted", e.Assignment.OrderID(), e.Assignment.Status()))
	}
	return nil
}
