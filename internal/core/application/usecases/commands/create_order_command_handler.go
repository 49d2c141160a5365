package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/assignment"
	"shopfloor/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Creates the order, seeds a waiting assignment at every initially routed
// location, and rebalances the global queue so the newcomer gets a position.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), 250, routedIDs)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires a UoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order intake command.
// Every routed location must exist; a duplicate order surfaces as a conflict
// from the store. The closing rebalance keeps global positions dense, so a
// freshly created order is rankable right away.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
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
	locationsRepo := uow.LocationRepository()
	assignmentsRepo := uow.AssignmentRepository()

	aggregate, err := order.NewOrder(command.OrderID(), command.TotalQuantity(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = ordersRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	for _, locationID := range command.LocationIDs() {
		if _, err = locationsRepo.Get(ctx, locationID); err != nil {
			return err
		}

		seeded, seedErr := assignment.NewAssignment(command.OrderID(), locationID)
		if seedErr != nil {
			return seedErr
		}

		if err = assignmentsRepo.Add(ctx, seeded); err != nil {
			return err
		}
	}

	if err = rebalanceGlobal(ctx, ordersRepo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
