package commands

import (
	"context"

	"shopfloor/internal/core/domain/services"
)

// SetGlobalPositionCommandHandler handles manual reordering of the global
// queue. The move is confined to the order's own bucket: a regular order can
// never land ahead of a rush order, and the requested index is clamped to
// the bucket's bounds rather than rejected.
type SetGlobalPositionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetGlobalPositionCommandHandler creates a handler for global reorders.
// Requires an OrderUoWFactory for transactional persistence.
func NewSetGlobalPositionCommandHandler(uowFactory OrderUoWFactory) SetGlobalPositionCommandHandler {
	return SetGlobalPositionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reorder.
// Loads the active set, places the order at the requested position through
// the ranker, and persists the rewritten positions. Returns not-found when
// the order is not in the active set.
func (h SetGlobalPositionCommandHandler) Handle(ctx context.Context, command SetGlobalPositionCommand) error {
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

	orders, err := ordersRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	placed, err := services.NewGlobalQueueRanker().Place(orders, command.OrderID(), command.Position())
	if err != nil {
		return err
	}

	for _, aggregate := range placed {
		if err = ordersRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
