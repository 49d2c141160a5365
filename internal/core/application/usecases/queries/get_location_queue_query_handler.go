package queries

import (
	"context"
	"database/sql"

	"shopfloor/internal/core/domain/model/assignment"
	"shopfloor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLocationQueueQueryHandler retrieves one location's queue from the
// database. Only queued assignments of non-shipped orders appear; the rows
// come back in their local queue order.
type GetLocationQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetLocationQueueQueryHandler creates a handler for location queue
// queries. Requires a GORM database connection for query execution.
func NewGetLocationQueueQueryHandler(db *gorm.DB) GetLocationQueueQueryHandler {
	return GetLocationQueueQueryHandler{db: db}
}

// Handle executes the query to retrieve the location's ranked queue.
func (h GetLocationQueueQueryHandler) Handle(
	ctx context.Context,
	query GetLocationQueueQuery,
) ([]GetLocationQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue := make([]GetLocationQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.order_id,
			a.queue_position,
			o.rush,
			o.total_quantity,
			a.completed_quantity
		FROM assignments a
		JOIN orders o ON o.id = a.order_id
		WHERE a.location_id = ?
		  AND a.status = ?
		  AND o.is_shipped = false
		ORDER BY a.queue_position
	`, query.LocationID().Bytes(), assignment.InQueue).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetLocationQueueQueryResponse
		var id uuid.UUID
		var position sql.NullInt64

		err = rows.Scan(
			&id,
			&position,
			&entry.Rush,
			&entry.TotalQuantity,
			&entry.CompletedQuantity,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.OrderID = orderID

		if position.Valid {
			entry.Position = int(position.Int64)
		}

		queue = append(queue, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}
