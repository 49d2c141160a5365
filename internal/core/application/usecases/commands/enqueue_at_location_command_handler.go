package commands

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/assignment"
	"shopfloor/internal/pkg/errs"
)

// EnqueueAtLocationCommandHandler handles manual queueing of an order at a
// location. A waiting assignment is promoted in place; a missing one is
// created directly in the queue. Queueing an order that is already queued,
// started, or finished at the location fails validation.
type EnqueueAtLocationCommandHandler struct {
	uowFactory UoWFactory
}

// NewEnqueueAtLocationCommandHandler creates a handler for manual queueing.
// Requires a UoWFactory for transactional persistence.
func NewEnqueueAtLocationCommandHandler(uowFactory UoWFactory) EnqueueAtLocationCommandHandler {
	return EnqueueAtLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual queueing command.
// Both the order and the location must exist. The assignment enters the
// queue behind the current tail and the queue is rebalanced, so a rush order
// still surfaces at the head.
func (h EnqueueAtLocationCommandHandler) Handle(ctx context.Context, command EnqueueAtLocationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	assignmentsRepo := uow.AssignmentRepository()

	if _, err := ordersRepo.Get(ctx, command.OrderID()); err != nil {
		return err
	}

	if _, err := uow.LocationRepository().Get(ctx, command.LocationID()); err != nil {
		return err
	}

	queued, err := assignmentsRepo.GetAllInQueueAtLocation(ctx, command.LocationID())
	if err != nil {
		return err
	}
	position := maxQueuePosition(queued) + 1

	target, err := assignmentsRepo.Get(ctx, command.OrderID(), command.LocationID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		created, createErr := assignment.NewAssignment(command.OrderID(), command.LocationID())
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
	default:
		if err = target.Enqueue(position); err != nil {
			return err
		}

		if err = assignmentsRepo.Update(ctx, target); err != nil {
			return err
		}
	}

	if err = rebalanceLocationQueue(ctx, ordersRepo, assignmentsRepo, command.LocationID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
