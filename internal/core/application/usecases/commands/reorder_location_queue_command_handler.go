package commands

import (
	"context"

	"shopfloor/internal/core/domain/services"
)

// ReorderLocationQueueCommandHandler handles manual reordering within one
// location's queue. Rush precedence is enforced strictly: a request that
// would put a regular order at or before the last rush entry fails with the
// allowed range in the error.
type ReorderLocationQueueCommandHandler struct {
	uowFactory QueueUoWFactory
}

// NewReorderLocationQueueCommandHandler creates a handler for local reorders.
// Requires a QueueUoWFactory for transactional persistence.
func NewReorderLocationQueueCommandHandler(uowFactory QueueUoWFactory) ReorderLocationQueueCommandHandler {
	return ReorderLocationQueueCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the local reorder.
// Loads the location's queued entries, places the order at the requested
// position through the ranker, and persists the rewritten positions.
// Returns not-found when the order has no queued assignment at the location.
func (h ReorderLocationQueueCommandHandler) Handle(ctx context.Context, command ReorderLocationQueueCommand) error {
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

	queued, err := assignmentsRepo.GetAllInQueueAtLocation(ctx, command.LocationID())
	if err != nil {
		return err
	}

	entries, err := collectQueueEntries(ctx, ordersRepo, queued)
	if err != nil {
		return err
	}

	placed, err := services.NewLocationQueueRanker().Place(entries, command.OrderID(), command.Position())
	if err != nil {
		return err
	}

	for _, e := range placed {
		if err = assignmentsRepo.Update(ctx, e.Assignment); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
