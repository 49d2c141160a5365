package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTotalQuantityIsInvalid = errors.New("total quantity must be greater than 0")
)

// CreateOrderCommand represents a request to register a new production order.
// Encapsulates the order identity, the piece count, and the processing
// locations the order is initially routed through.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, 250, []kernel.UUID{cuttingID, weldingID})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	totalQuantity int
	locationIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new production order.
// Validates that the order ID is valid, the quantity is positive, and every
// routed location ID is valid. An empty location list is allowed; routing
// can attach locations later.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	totalQuantity int,
	locationIDs []kernel.UUID,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTotalQuantity(totalQuantity),
		command.setLocationIDs(locationIDs),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TotalQuantity returns the ordered piece count.
func (c CreateOrderCommand) TotalQuantity() int {
	return c.totalQuantity
}

// LocationIDs returns the identifiers of the initially routed locations.
func (c CreateOrderCommand) LocationIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.locationIDs))
	copy(ids, c.locationIDs)
	return ids
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTotalQuantity(totalQuantity int) error {
	if totalQuantity <= 0 {
		return ErrTotalQuantityIsInvalid
	}

	c.totalQuantity = totalQuantity
	return nil
}

func (c *CreateOrderCommand) setLocationIDs(locationIDs []kernel.UUID) error {
	for _, id := range locationIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.locationIDs = make([]kernel.UUID, len(locationIDs))
	copy(c.locationIDs, locationIDs)
	return nil
}
