package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/order"
)

// Notifier defines the outbound contract for alert delivery. The core calls
// it when the rush flag changes; delivery itself is an external concern.
type Notifier interface {
	// NotifyRushSet announces that the order entered the rush class.
	NotifyRushSet(ctx context.Context, aggregate *order.Order) error

	// NotifyRushCleared announces that the order left the rush class.
	NotifyRushCleared(ctx context.Context, aggregate *order.Order) error
}
