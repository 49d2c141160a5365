package commands

import (
	"context"

	"shopfloor/internal/core/ports"
)

// SetRushCommandHandler handles the business logic for flagging an order as
// rush. Rush orders precede every regular order in the global queue, ranked
// among themselves by the moment the rush was requested.
//
// Example:
//
//	handler := NewSetRushCommandHandler(uowFactory, notifier)
//	cmd, _ := NewSetRushCommand(orderID, time.Now().UTC())
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("rush request failed: %w", err)
//	}
type SetRushCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewSetRushCommandHandler creates a handler for rush requests.
// Requires an OrderUoWFactory for transactional persistence and a Notifier
// for announcing the change.
func NewSetRushCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) SetRushCommandHandler {
	return SetRushCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the rush request.
// Flags the order, keeps its previous position as a ranking hint, and
// rebalances the global queue so the order lands in the rush bucket. A
// repeated request for an order already in rush is a no-op. The alert goes
// out only after the change is committed.
func (h SetRushCommandHandler) Handle(ctx context.Context, command SetRushCommand) error {
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

	if aggregate.Rush() {
		return uow.Commit(ctx)
	}

	if err = aggregate.MarkRush(command.RequestedAt()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = rebalanceGlobal(ctx, ordersRepo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.notifier.NotifyRushSet(ctx, aggregate)
}
