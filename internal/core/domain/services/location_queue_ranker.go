package services

import (
	"fmt"
	"sort"

	"shopfloor/internal/core/domain/model/assignment"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"
)

// QueueEntry pairs a queued assignment with its order. The location queue
// ranks assignments, but most of the ranking signal (rush class, global
// position, intake time) lives on the order, so both travel together.
type QueueEntry struct {
	Assignment *assignment.Assignment
	Order      *order.Order
}

// LocationQueueRanker is a domain service that derives one location's work
// queue from the global scheduling attributes. Like the global ranker it is
// a pure in-memory computation; persisting positions is the caller's job.
//
// Ranking rule, applied in order:
//  1. Rush orders precede regular orders
//  2. Among rush orders, earlier rush timestamps come first
//  3. Ascending global queue position, orders without one last
//  4. Ascending previous local queue position, entries without one last
//  5. Ascending intake timestamp
//
// Identifiers break remaining ties. After ranking, local positions are
// rewritten to a dense 1..K run.
type LocationQueueRanker struct{}

// NewLocationQueueRanker creates a new LocationQueueRanker instance.
//
// Returns:
//   - LocationQueueRanker: A new instance ready for ranking operations
func NewLocationQueueRanker() LocationQueueRanker {
	return LocationQueueRanker{}
}

// Rank orders the given queue entries by the ranking rule and assigns dense
// 1-based local positions to them.
//
// Parameters:
//   - entries: The queued entries of one location; every assignment must be
//     InQueue and every order active
//
// Returns:
//   - []QueueEntry: The entries in queue order; index i holds position i+1
//   - error: Validation error if an entry is invalid
func (r LocationQueueRanker) Rank(entries []QueueEntry) ([]QueueEntry, error) {
	for _, e := range entries {
		if err := r.validateEntry(e); err != nil {
			return nil, err
		}
	}

	ranked := make([]QueueEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return lessLocal(ranked[i], ranked[j])
	})

	for i, e := range ranked {
		if err := e.Assignment.SetQueuePosition(i + 1); err != nil {
			return nil, err
		}
	}

	return ranked, nil
}

// Place ranks the entries and then moves one order's assignment to the
// requested local position. Unlike the global queue, local moves are strict:
// a request that would break rush precedence is rejected, and the error
// reports the positions the order may actually take.
//
// Parameters:
//   - entries: The queued entries of one location
//   - orderID: The order whose assignment moves
//   - requested: The desired 1-based position within the location queue
//
// Returns:
//   - []QueueEntry: The queue after the move, positions rewritten 1..K
//   - error: Validation error for positions below 1, an out-of-range error
//     carrying the allowed bounds when the request crosses the rush
//     boundary or exceeds the queue, or not-found when the order has no
//     queued assignment here
func (r LocationQueueRanker) Place(entries []QueueEntry, orderID kernel.UUID, requested int) ([]QueueEntry, error) {
	if requested < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("position is invalid",
			fmt.Errorf("%d is not greater than 0", requested))
	}

	ranked, err := r.Rank(entries)
	if err != nil {
		return nil, err
	}

	targetIdx := -1
	for i, e := range ranked {
		if e.Order.ID().IsEqual(orderID) {
			targetIdx = i
			break
		}
	}
	if targetIdx == -1 {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}

	target := ranked[targetIdx]
	rushCount := 0
	for _, e := range ranked {
		if e.Order.Rush() {
			rushCount++
		}
	}

	minPos, maxPos := rushCount+1, len(ranked)
	if target.Order.Rush() {
		minPos, maxPos = 1, rushCount
	}
	if requested < minPos || requested > maxPos {
		return nil, errs.NewValueIsOutOfRangeError("position", requested, minPos, maxPos)
	}

	// Remove the target and reinsert at the requested slot; the bounds
	// check above guarantees the slot stays inside the target's class.
	remaining := append(append(make([]QueueEntry, 0, len(ranked)-1), ranked[:targetIdx]...), ranked[targetIdx+1:]...)
	result := make([]QueueEntry, 0, len(ranked))
	result = append(result, remaining[:requested-1]...)
	result = append(result, target)
	result = append(result, remaining[requested-1:]...)

	for i, e := range result {
		if err := e.Assignment.SetQueuePosition(i + 1); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// validateEntry checks that an entry can take part in local ranking.
func (r LocationQueueRanker) validateEntry(e QueueEntry) error {
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
	if e.Assignment.Status() != assignment.InQueue {
		return errs.NewValueIsInvalidErrorWithCause("entries are invalid",
			fmt.Errorf("assignment of order %s is %s, not InQueue", e.Assignment.OrderID(), e.Assignment.Status()))
	}
	if !e.Order.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("entries are invalid",
			fmt.Errorf("order %s is shipped and cannot be queued", e.Order.ID()))
	}
	return nil
}

// lessLocal implements the local ranking rule.
func lessLocal(a, b QueueEntry) bool {
	if a.Order.Rush() != b.Order.Rush() {
		return a.Order.Rush()
	}
	if a.Order.Rush() && b.Order.Rush() {
		if c := compareTimePtr(a.Order.RushSetAt(), b.Order.RushSetAt()); c != 0 {
			return c < 0
		}
	}
	if c := compareIntPtr(a.Order.GlobalQueuePosition(), b.Order.GlobalQueuePosition()); c != 0 {
		return c < 0
	}
	if c := compareIntPtr(a.Assignment.QueuePosition(), b.Assignment.QueuePosition()); c != 0 {
		return c < 0
	}
	if !a.Order.CreatedAt().Equal(b.Order.CreatedAt()) {
		return a.Order.CreatedAt().Before(b.Order.CreatedAt())
	}
	return a.Order.ID().String() < b.Order.ID().String()
}
