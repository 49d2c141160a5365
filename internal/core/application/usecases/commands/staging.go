package commands

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/assignment"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/location"
	"shopfloor/internal/pkg/errs"
)

// stageNextLocation queues the order at the location that follows the given
// one in the routing sequence. A waiting assignment is promoted, a missing
// one is created directly in the queue, and a row that already queued,
// started, paused, or finished is left alone. The staged queue is rebalanced
// so rush orders surface there immediately. No-op at the end of the route.
func stageNextLocation(ctx context.Context, uow UoW, orderID kernel.UUID, locationID kernel.UUID) error {
	locations, err := uow.LocationRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	sequence, err := location.NewSequence(locations)
	if err != nil {
		return err
	}

	next, err := sequence.Next(locationID)
	if err != nil {
		return err
	}
	if next == nil {
		return nil
	}

	assignmentsRepo := uow.AssignmentRepository()

	queued, err := assignmentsRepo.GetAllInQueueAtLocation(ctx, next.ID())
	if err != nil {
		return err
	}
	position := maxQueuePosition(queued) + 1

	staged, err := assignmentsRepo.Get(ctx, orderID, next.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		created, createErr := assignment.NewAssignment(orderID, next.ID())
		if createErr != nil {
			return createErr
		}

		if err = created.Enqueue(position); err != nil {
			return err
		}

		if err = assignmentsRepo.Add(ctx, created); err != nil {
			return err
		}
	case err != nil:
		return err
	case staged.Status() == assignment.NotStarted:
		if err = staged.Enqueue(position); err != nil {
			return err
		}

		if err = assignmentsRepo.Update(ctx, staged); err != nil {
			return err
		}
	default:
		return nil
	}

	return rebalanceLocationQueue(ctx, uow.OrderRepository(), assignmentsRepo, next.ID())
}
