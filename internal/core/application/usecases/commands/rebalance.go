package commands

import (
	"context"

	"shopfloor/internal/core/domain/model/assignment"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/location"
	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/core/ports"
)

// rebalanceGlobal reloads every active order, ranks the global queue, and
// persists the rewritten positions. Runs inside the caller's transaction.
func rebalanceGlobal(ctx context.Context, ordersRepo ports.OrderRepository) error {
	orders, err := ordersRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	ranked, err := services.NewGlobalQueueRanker().Rank(orders)
	if err != nil {
		return err
	}

	for _, aggregate := range ranked {
		if err = ordersRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return nil
}

// collectQueueEntries joins assignments with their orders. Entries of shipped
// orders are dropped; those rows no longer participate in ranking.
func collectQueueEntries(
	ctx context.Context,
	ordersRepo ports.OrderRepository,
	assignments []*assignment.Assignment,
) ([]services.QueueEntry, error) {
	entries := make([]services.QueueEntry, 0, len(assignments))

	for _, a := range assignments {
		aggregate, err := ordersRepo.Get(ctx, a.OrderID())
		if err != nil {
			return nil, err
		}

		if !aggregate.IsActive() {
			continue
		}

		entries = append(entries, services.QueueEntry{Assignment: a, Order: aggregate})
	}

	return entries, nil
}

// rebalanceLocationQueue reloads the location's queued assignments, ranks
// them, and persists the rewritten positions. Runs inside the caller's
// transaction.
func rebalanceLocationQueue(
	ctx context.Context,
	ordersRepo ports.OrderRepository,
	assignmentsRepo ports.AssignmentRepository,
	locationID kernel.UUID,
) error {
	queued, err := assignmentsRepo.GetAllInQueueAtLocation(ctx, locationID)
	if err != nil {
		return err
	}

	entries, err := collectQueueEntries(ctx, ordersRepo, queued)
	if err != nil {
		return err
	}

	ranked, err := services.NewLocationQueueRanker().Rank(entries)
	if err != nil {
		return err
	}

	for _, e := range ranked {
		if err = assignmentsRepo.Update(ctx, e.Assignment); err != nil {
			return err
		}
	}

	return nil
}

// maxQueuePosition returns the highest queue position among the given
// assignments, or zero for an empty queue.
func maxQueuePosition(assignments []*assignment.Assignment) int {
	maxPos := 0

	for _, a := range assignments {
		if pos := a.QueuePosition(); pos != nil && *pos > maxPos {
			maxPos = *pos
		}
	}

	return maxPos
}

// promoteWaiting applies the auto queue rule at one location: waiting
// assignments of globally ranked orders enter the queue behind the current
// tail. No-op at locations the rule does not apply to. The caller rebalances
// the queue afterwards.
func promoteWaiting(
	ctx context.Context,
	ordersRepo ports.OrderRepository,
	assignmentsRepo ports.AssignmentRepository,
	loc *location.Location,
) error {
	if !loc.AutoQueueApplies() {
		return nil
	}

	waiting, err := assignmentsRepo.GetAllNotStartedAtLocation(ctx, loc.ID())
	if err != nil {
		return err
	}
	if len(waiting) == 0 {
		return nil
	}

	queued, err := assignmentsRepo.GetAllInQueueAtLocation(ctx, loc.ID())
	if err != nil {
		return err
	}

	entries, err := collectQueueEntries(ctx, ordersRepo, waiting)
	if err != nil {
		return err
	}

	promoted, err := services.NewAutoPromotion().Promote(loc, entries, maxQueuePosition(queued))
	if err != nil {
		return err
	}

	for _, e := range promoted {
		if err = assignmentsRepo.Update(ctx, e.Assignment); err != nil {
			return err
		}
	}

	return nil
}
