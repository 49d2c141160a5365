package services

import (
	"fmt"
	"sort"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"
)

// GlobalQueueRanker is a domain service that derives the global production
// queue over the active (non-shipped) orders. Ranking is a pure in-memory
// computation; persisting the resulting positions is the caller's job.
//
// Ranking rule, applied in order:
//  1. Rush orders precede regular orders
//  2. Among rush orders, earlier rush timestamps come first
//  3. Ascending previous queue position, orders without one last
//  4. Ascending intake timestamp
//
// Identifiers break remaining ties so the same inputs always produce the
// same queue. After ranking, positions are rewritten to a dense 1..N run.
//
// Example usage:
//
//	ranker := services.NewGlobalQueueRanker()
//	ranked, err := ranker.Rank(activeOrders)
//	if err != nil {
//	    // Handle validation failure
//	}
//	// ranked[0] holds position 1, ranked[1] position 2, ...
type GlobalQueueRanker struct{}

// NewGlobalQueueRanker creates a new GlobalQueueRanker instance.
//
// Returns:
//   - GlobalQueueRanker: A new instance ready for ranking operations
func NewGlobalQueueRanker() GlobalQueueRanker {
	return GlobalQueueRanker{}
}

// Rank orders the given active orders by the ranking rule and assigns dense
// 1-based positions to them.
//
// Parameters:
//   - orders: The active orders to rank (each must be properly constructed)
//
// Returns:
//   - []*order.Order: The orders in queue order; index i holds position i+1
//   - error: Validation error if an order is invalid or shipped
func (r GlobalQueueRanker) Rank(orders []*order.Order) ([]*order.Order, error) {
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if !o.IsActive() {
			return nil, errs.NewValueIsInvalidErrorWithCause("orders are invalid",
				fmt.Errorf("order %s is shipped and cannot be ranked", o.ID()))
		}
	}

	ranked := make([]*order.Order, len(orders))
	copy(ranked, orders)

	sort.SliceStable(ranked, func(i, j int) bool {
		return lessGlobal(ranked[i], ranked[j])
	})

	for i, o := range ranked {
		if err := o.AssignGlobalPosition(i + 1); err != nil {
			return nil, err
		}
	}

	return ranked, nil
}

// Place ranks the orders and then moves one of them to the requested
// position. The request is clamped so the order never leaves its own
// class: a regular order cannot move ahead of the rush block and a rush
// order cannot move behind it. The requested position counts over the
// whole queue; out-of-reach values land the order at its class boundary.
//
// Parameters:
//   - orders: The active orders forming the queue
//   - orderID: The order to move
//   - requested: The desired 1-based position over the whole queue
//
// Returns:
//   - []*order.Order: The queue after the move, positions rewritten 1..N
//   - error: Validation error for positions below 1, or not-found when the
//     order is not part of the active set
func (r GlobalQueueRanker) Place(orders []*order.Order, orderID kernel.UUID, requested int) ([]*order.Order, error) {
	if requested < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("position is invalid",
			fmt.Errorf("%d is not greater than 0", requested))
	}

	ranked, err := r.Rank(orders)
	if err != nil {
		return nil, err
	}

	target := findOrder(ranked, orderID)
	if target == nil {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}

	rushBucket, regularBucket := splitByRush(ranked, target)

	bucket := regularBucket
	translated := requested - len(rushBucket)
	if target.Rush() {
		bucket = rushBucket
		translated = requested
	}

	// Clamp into [1, len(bucket)+1]: the bucket no longer contains the
	// target, so len(bucket)+1 appends at its end.
	if translated < 1 {
		translated = 1
	}
	if translated > len(bucket)+1 {
		translated = len(bucket) + 1
	}

	placed := insertOrder(bucket, target, translated-1)
	if target.Rush() {
		rushBucket = placed
	} else {
		regularBucket = placed
	}

	result := append(append(make([]*order.Order, 0, len(ranked)), rushBucket...), regularBucket...)
	for i, o := range result {
		if err := o.AssignGlobalPosition(i + 1); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// lessGlobal implements the global ranking rule.
func lessGlobal(a, b *order.Order) bool {
	if a.Rush() != b.Rush() {
		return a.Rush()
	}
	if a.Rush() && b.Rush() {
		if c := compareTimePtr(a.RushSetAt(), b.RushSetAt()); c != 0 {
			return c < 0
		}
	}
	if c := compareIntPtr(a.GlobalQueuePosition(), b.GlobalQueuePosition()); c != 0 {
		return c < 0
	}
	if !a.CreatedAt().Equal(b.CreatedAt()) {
		return a.CreatedAt().Before(b.CreatedAt())
	}
	return a.ID().String() < b.ID().String()
}

// compareIntPtr orders two optional ints ascending with nil last.
func compareIntPtr(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

// compareTimePtr orders two optional timestamps ascending with nil last.
func compareTimePtr(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}

// findOrder returns the order with the given ID, or nil.
func findOrder(orders []*order.Order, orderID kernel.UUID) *order.Order {
	for _, o := range orders {
		if o.ID().IsEqual(orderID) {
			return o
		}
	}
	return nil
}

// splitByRush partitions the ranked queue into its rush and regular buckets,
// leaving the target out of both.
func splitByRush(ranked []*order.Order, target *order.Order) (rush []*order.Order, regular []*order.Order) {
	for _, o := range ranked {
		if o.IsEqual(target) {
			continue
		}
		if o.Rush() {
			rush = append(rush, o)
		} else {
			regular = append(regular, o)
		}
	}
	return rush, regular
}

// insertOrder returns bucket with target inserted at index.
func insertOrder(bucket []*order.Order, target *order.Order, index int) []*order.Order {
	out := make([]*order.Order, 0, len(bucket)+1)
	out = append(out, bucket[:index]...)
	out = append(out, target)
	out = append(out, bucket[index:]...)
	return out
}
