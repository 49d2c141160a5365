// Package orderrepo provides data transfer objects and mapping functions for
// production order persistence. This package implements the repository pattern
// for the order domain aggregate, handling the conversion between domain
// entities and database representations.
package orderrepo

import (
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with an index on
// the shipping flag so active-order scans stay cheap.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TotalQuantity       int
	ShippedQuantity     int
	IsFinished          bool
	IsShipped           bool `gorm:"index"`
	PartiallyShipped    bool
	Rush                bool
	RushSetAt           *time.Time
	GlobalQueuePosition *int
	CreatedAt           time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the nullable rush timestamp and global
// queue position.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:                  order.ID().Bytes(),
		TotalQuantity:       order.TotalQuantity(),
		ShippedQuantity:     order.ShippedQuantity(),
		IsFinished:          order.IsFinished(),
		IsShipped:           order.IsShipped(),
		PartiallyShipped:    order.PartiallyShipped(),
		Rush:                order.Rush(),
		RushSetAt:           order.RushSetAt(),
		GlobalQueuePosition: order.GlobalQueuePosition(),
		CreatedAt:           order.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including rush state and queue position
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.TotalQuantity,
		dto.ShippedQuantity,
		dto.IsFinished,
		dto.IsShipped,
		dto.PartiallyShipped,
		dto.Rush,
		dto.RushSetAt,
		dto.GlobalQueuePosition,
		dto.CreatedAt,
	)
}
