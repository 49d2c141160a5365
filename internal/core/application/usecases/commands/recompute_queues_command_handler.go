package commands

import (
	"context"
)

// RecomputeQueuesCommandHandler runs the full scheduling sweep. The global
// queue is rebalanced first so location queues rank against fresh global
// positions; every location then gets auto-promotion and a rebalance. The
// whole sweep is one transaction, so readers never observe a half-reordered
// system.
//
// Example:
//
//	handler := NewRecomputeQueuesCommandHandler(uowFactory)
//	cmd := NewRecomputeQueuesCommand()
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("queue sweep failed: %w", err)
//	}
type RecomputeQueuesCommandHandler struct {
	uowFactory UoWFactory
}

// NewRecomputeQueuesCommandHandler creates a handler for the full sweep.
// Requires a UoWFactory for transactional persistence.
func NewRecomputeQueuesCommandHandler(uowFactory UoWFactory) RecomputeQueuesCommandHandler {
	return RecomputeQueuesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command.
func (h RecomputeQueuesCommandHandler) Handle(ctx context.Context, command RecomputeQueuesCommand) error {
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

	if err := rebalanceGlobal(ctx, ordersRepo); err != nil {
		return err
	}

	locations, err := uow.LocationRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	for _, loc := range locations {
		if err = promoteWaiting(ctx, ordersRepo, assignmentsRepo, loc); err != nil {
			return err
		}

		if err = rebalanceLocationQueue(ctx, ordersRepo, assignmentsRepo, loc.ID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
