package commands

import (
	"context"

	"shopfloor/internal/core/ports"
)

// UnsetRushCommandHandler handles the business logic for clearing an order's
// rush flag. The order does not keep its old relative rank: it rejoins the
// regular bucket at the end of the queue.
type UnsetRushCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewUnsetRushCommandHandler creates a handler for rush withdrawals.
// Requires an OrderUoWFactory for transactional persistence and a Notifier
// for announcing the change.
func NewUnsetRushCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) UnsetRushCommandHandler {
	return UnsetRushCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the rush withdrawal.
// Clears the rush state together with the order's position so the rebalance
// appends it to the end of the regular bucket. A request for an order not in
// rush is a no-op. The alert goes out only after the change is committed.
func (h UnsetRushCommandHandler) Handle(ctx context.Context, command UnsetRushCommand) error {
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

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.Rush() {
		return uow.Commit(ctx)
	}

	aggregate.ClearRush()

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = rebalanceGlobal(ctx, ordersRepo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.notifier.NotifyRushCleared(ctx, aggregate)
}
