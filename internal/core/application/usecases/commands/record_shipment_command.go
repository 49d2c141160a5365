package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var (
	ErrRecordShipmentCommandIsNotConstructed = errors.New(
		"RecordShipmentCommand must be created via NewRecordShipmentCommand constructor",
	)
	ErrShippedQuantityIsInvalid = errors.New("shipped quantity must not be negative")
)

// RecordShipmentCommand represents a report of the absolute shipped quantity
// of an order. A fully shipped order leaves every queue for good.
type RecordShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	shippedQuantity int

	guard guard.ConstructorGuard
}

// NewRecordShipmentCommand creates a command to record a shipment.
// Validates that the order ID is valid and the quantity is not negative; the
// upper bound is the order's own total and is enforced by the aggregate.
func NewRecordShipmentCommand(orderID kernel.UUID, shippedQuantity int) (RecordShipmentCommand, error) {
	command := RecordShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setShippedQuantity(shippedQuantity),
	); err != nil {
		return RecordShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordShipmentCommandIsNotConstructed if validation fails.
func (c RecordShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRecordShipmentCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the shipped order.
func (c RecordShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShippedQuantity returns the reported absolute shipped piece count.
func (c RecordShipmentCommand) ShippedQuantity() int {
	return c.shippedQuantity
}

func (c *RecordShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordShipmentCommand) setShippedQuantity(shippedQuantity int) error {
	if shippedQuantity < 0 {
		return ErrShippedQuantityIsInvalid
	}

	c.shippedQuantity = shippedQuantity
	return nil
}
