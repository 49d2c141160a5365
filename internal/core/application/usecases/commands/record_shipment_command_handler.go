package commands

import (
	"context"

	"shopfloor/internal/core/domain/model/assignment"
)

// RecordShipmentCommandHandler handles the business logic for shipment
// reports. Shipping in full retires the order from scheduling: its global
// position is released and its queued assignments leave their location
// queues, which are rebalanced to stay dense.
type RecordShipmentCommandHandler struct {
	uowFactory QueueUoWFactory
}

// NewRecordShipmentCommandHandler creates a handler for shipment reports.
// Requires a QueueUoWFactory for transactional persistence.
func NewRecordShipmentCommandHandler(uowFactory QueueUoWFactory) RecordShipmentCommandHandler {
	return RecordShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment report.
// Records the absolute shipped quantity on the order and rebalances the
// global queue. When the report completes the order, every location queue
// the order still sat in is swept as well.
func (h RecordShipmentCommandHandler) Handle(ctx context.Context, command RecordShipmentCommand) error {
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

	if err = aggregate.RecordShipment(command.ShippedQuantity()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = rebalanceGlobal(ctx, ordersRepo); err != nil {
		return err
	}

	if !aggregate.IsActive() {
		if err = h.sweepQueues(ctx, uow, command); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// sweepQueues releases the shipped order's queued rows and rebalances the
// affected location queues.
func (h RecordShipmentCommandHandler) sweepQueues(
	ctx context.Context,
	uow QueueUoW,
	command RecordShipmentCommand,
) error {
	assignmentsRepo := uow.AssignmentRepository()

	all, err := assignmentsRepo.GetAllForOrder(ctx, command.OrderID())
	if err != nil {
		return err
	}

	for _, a := range all {
		if a.Status() != assignment.InQueue {
			continue
		}

		a.ClearQueuePosition()
		if err = assignmentsRepo.Update(ctx, a); err != nil {
			return err
		}

		if err = rebalanceLocationQueue(ctx, uow.OrderRepository(), assignmentsRepo, a.LocationID()); err != nil {
			return err
		}
	}

	return nil
}
