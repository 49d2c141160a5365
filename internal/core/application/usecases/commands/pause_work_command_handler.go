package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/ports"
)

// PauseWorkCommandHandler handles the business logic for pausing work.
// Only in-progress work can pause; queue positions are untouched and the
// order stays staged wherever it already is.
type PauseWorkCommandHandler struct {
	uowFactory WorkUoWFactory
}

// NewPauseWorkCommandHandler creates a handler for pausing work.
// Requires a WorkUoWFactory for transactional persistence.
func NewPauseWorkCommandHandler(uowFactory WorkUoWFactory) PauseWorkCommandHandler {
	return PauseWorkCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pause command.
// Returns not-found when no assignment row exists for the pair and a
// validation error when the work is not in progress.
func (h PauseWorkCommandHandler) Handle(ctx context.Context, command PauseWorkCommand) error {
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

	if err = target.Pause(); err != nil {
		return err
	}

	if err = assignmentsRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.AuditLog().Append(ctx, ports.AuditEvent{
		ID:         kernel.NewUUID(),
		OrderID:    command.OrderID(),
		LocationID: command.LocationID(),
		Action:     ports.AuditActionPause,
		ActorID:    command.ActorID(),
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
