package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/ports"
)

// StartWorkCommandHandler handles the business logic for starting work.
// The assignment leaves the queue, the queue closes the gap, and the order
// is staged at the next location along the route in the same transaction.
// Re-starting paused or in-progress work is valid and restamps the start.
//
// Example:
//
//	handler := NewStartWorkCommandHandler(uowFactory)
//	cmd, _ := NewStartWorkCommand(orderID, locationID, badge)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("start failed: %w", err)
//	}
type StartWorkCommandHandler struct {
	uowFactory UoWFactory
}

// NewStartWorkCommandHandler creates a handler for starting work.
// Requires a UoWFactory for transactional persistence.
func NewStartWorkCommandHandler(uowFactory UoWFactory) StartWorkCommandHandler {
	return StartWorkCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command.
// Returns not-found when no assignment row exists for the pair and a
// validation error when the work is already done.
func (h StartWorkCommandHandler) Handle(ctx context.Context, command StartWorkCommand) error {
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

	target, err := assignmentsRepo.Get(ctx, command.OrderID(), command.LocationID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = target.Start(now); err != nil {
		return err
	}

	if err = assignmentsRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEvent{
		ID:         kernel.NewUUID(),
		OrderID:    command.OrderID(),
		LocationID: command.LocationID(),
		Action:     ports.AuditActionStart,
		ActorID:    command.ActorID(),
		OccurredAt: now,
	}); err != nil {
		return err
	}

	if err = rebalanceLocationQueue(ctx, uow.OrderRepository(), assignmentsRepo, command.LocationID()); err != nil {
		return err
	}

	if err = stageNextLocation(ctx, uow, command.OrderID(), command.LocationID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
