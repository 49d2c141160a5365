package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/assignment"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/ports"
)

// FinishWorkCommandHandler handles the business logic for finishing work.
// The assignment becomes done, the location queue closes the gap, the order
// is staged at the next location, and the whole order is marked finished
// once its last assignment is done. Finishing work that is already done is
// an idempotent success with no further side effects.
//
// Example:
//
//	handler := NewFinishWorkCommandHandler(uowFactory)
//	cmd, _ := NewFinishWorkCommand(orderID, locationID, 250, badge)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("finish failed: %w", err)
//	}
type FinishWorkCommandHandler struct {
	uowFactory UoWFactory
}

// NewFinishWorkCommandHandler creates a handler for finishing work.
// Requires a UoWFactory for transactional persistence.
func NewFinishWorkCommandHandler(uowFactory UoWFactory) FinishWorkCommandHandler {
	return FinishWorkCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finish command.
// Returns not-found when no assignment row exists for the pair.
func (h FinishWorkCommandHandler) Handle(ctx context.Context, command FinishWorkCommand) error {
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

	if target.Status() == assignment.Done {
		return uow.Commit(ctx)
	}

	now := time.Now().UTC()
	if err = target.Finish(command.CompletedQuantity(), now); err != nil {
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
		Action:     ports.AuditActionFinish,
		ActorID:    command.ActorID(),
		Quantity:   &quantity,
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

	if err = h.completeOrderIfDone(ctx, uow, command.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// completeOrderIfDone marks the order finished once every one of its
// assignments is done. Completion never reverts.
func (h FinishWorkCommandHandler) completeOrderIfDone(ctx context.Context, uow UoW, orderID kernel.UUID) error {
	all, err := uow.AssignmentRepository().GetAllForOrder(ctx, orderID)
	if err != nil {
		return err
	}

	for _, a := range all {
		if a.Status() != assignment.Done {
			return nil
		}
	}

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	aggregate.MarkFinished()

	return ordersRepo.Update(ctx, aggregate)
}
