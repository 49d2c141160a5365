package queries

import (
	"context"
	"database/sql"

	"shopfloor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetGlobalQueueQueryHandler retrieves the global production queue from the
// database. Shipped orders are excluded; the remaining orders come back in
// their ranked order.
//
// Example:
//
//	handler := NewGetGlobalQueueQueryHandler(db)
//	query := NewGetGlobalQueueQuery()
//
//	queue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get the global queue: %v", err)
//	    return err
//	}
type GetGlobalQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetGlobalQueueQueryHandler creates a handler for global queue queries.
// Requires a GORM database connection for query execution.
func NewGetGlobalQueueQueryHandler(db *gorm.DB) GetGlobalQueueQueryHandler {
	return GetGlobalQueueQueryHandler{db: db}
}

// Handle executes the query to retrieve the ranked global queue.
// Returns all non-shipped orders sorted by their global queue position.
func (h GetGlobalQueueQueryHandler) Handle(
	ctx context.Context,
	query GetGlobalQueueQuery,
) ([]GetGlobalQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue := make([]GetGlobalQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			global_queue_position,
			rush,
			rush_set_at,
			total_quantity,
			shipped_quantity,
			created_at
		FROM orders
		WHERE is_shipped = false
		ORDER BY global_queue_position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetGlobalQueueQueryResponse
		var id uuid.UUID
		var position sql.NullInt64
		var rushSetAt sql.NullTime

		err = rows.Scan(
			&id,
			&position,
			&entry.Rush,
			&rushSetAt,
			&entry.TotalQuantity,
			&entry.ShippedQuantity,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = orderID

		if position.Valid {
			entry.Position = int(position.Int64)
		}
		if rushSetAt.Valid {
			at := rushSetAt.Time
			entry.RushSetAt = &at
		}

		queue = append(queue, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}
