package commands

import (
	"context"
)

// RefreshLocationQueueCommandHandler brings one location's queue up to date.
// At locations the auto queue rule applies to, waiting orders with a global
// rank enter the queue first; the rebalance then normalizes all positions.
type RefreshLocationQueueCommandHandler struct {
	uowFactory UoWFactory
}

// NewRefreshLocationQueueCommandHandler creates a handler for queue
// refreshes. Requires a UoWFactory for transactional persistence.
func NewRefreshLocationQueueCommandHandler(uowFactory UoWFactory) RefreshLocationQueueCommandHandler {
	return RefreshLocationQueueCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refresh.
// Returns not-found when the location does not exist.
func (h RefreshLocationQueueCommandHandler) Handle(ctx context.Context, command RefreshLocationQueueCommand) error {
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

	loc, err := uow.LocationRepository().Get(ctx, command.LocationID())
	if err != nil {
		return err
	}

	if err = promoteWaiting(ctx, ordersRepo, assignmentsRepo, loc); err != nil {
		return err
	}

	if err = rebalanceLocationQueue(ctx, ordersRepo, assignmentsRepo, loc.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
