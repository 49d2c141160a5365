package commands

import (
	"context"
)

// DetachOrderLocationCommandHandler handles explicit removal of an order's
// assignment at a location. The location's queue is rebalanced afterwards so
// the remaining positions stay dense.
type DetachOrderLocationCommandHandler struct {
	uowFactory QueueUoWFactory
}

// NewDetachOrderLocationCommandHandler creates a handler for detachments.
// Requires a QueueUoWFactory for transactional persistence.
func NewDetachOrderLocationCommandHandler(uowFactory QueueUoWFactory) DetachOrderLocationCommandHandler {
	return DetachOrderLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the detachment.
// Returns not-found when no assignment row exists for the pair.
func (h DetachOrderLocationCommandHandler) Handle(ctx context.Context, command DetachOrderLocationCommand) error {
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

	assignmentsRepo := uow.AssignmentRepository()

	if err := assignmentsRepo.Remove(ctx, command.OrderID(), command.LocationID()); err != nil {
		return err
	}

	if err := rebalanceLocationQueue(ctx, uow.OrderRepository(), assignmentsRepo, command.LocationID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
