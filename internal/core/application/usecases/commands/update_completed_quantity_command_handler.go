package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/ports"
)

// UpdateCompletedQuantityCommandHandler handles completed piece count
// corrections. The count changes in place; status, timestamps, and queue
// positions stay as they are.
type UpdateCompletedQuantityCommandHandler struct {
	uowFactory WorkUoWFactory
}

// NewUpdateCompletedQuantityCommandHandler creates a handler for piece count
// corrections. Requires a WorkUoWFactory for transactional persistence.
func NewUpdateCompletedQuantityCommandHandler(uowFactory WorkUoWFactory) UpdateCompletedQuantityCommandHandler {
	return UpdateCompletedQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the correction.
// Returns not-found when no assignment row exists for the pair.
func (h UpdateCompletedQuantityCommandHandler) Handle(
	ctx context.Context,
	command UpdateCompletedQuantityCommand,
) error {
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

	if err = target.RecordCompletedQuantity(command.CompletedQuantity()); err != nil {
		return err
	}

	if err = assignmentsRepo.Update(ctx, target); err != nil {
		return err
	}

	quantity := command.CompletedQuantity()
	if err = uow.AuditLog().Append(ctx, ports.AuditEvent{
		ID:         kernel.NewUUID(),
		OrderID:    command.OrderID(),
		LocationID: command.LocationID(),
		Action:     ports.AuditActionQuantityUpdate,
		ActorID:    command.ActorID(),
		Quantity:   &quantity,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
