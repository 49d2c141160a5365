package notify

import (
	"context"
	"log/slog"

	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"
)

// SlogNotifier delivers rush alerts to the structured log. Planning staff
// follow the log stream; a transport with delivery guarantees can replace
// this adapter without touching the core.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier that writes rush alerts via slog.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "rush_notifier"),
	}
}

// NotifyRushSet announces that the order entered the rush class.
func (n *SlogNotifier) NotifyRushSet(ctx context.Context, aggregate *order.Order) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("aggregate")
	}

	n.logger.InfoContext(ctx, "Order flagged as rush",
		"order_id", aggregate.ID().String(),
		"rush_set_at", aggregate.RushSetAt(),
	)
	return nil
}

// NotifyRushCleared announces that the order left the rush class.
func (n *SlogNotifier) NotifyRushCleared(ctx context.Context, aggregate *order.Order) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("aggregate")
	}

	n.logger.InfoContext(ctx, "Order rush flag cleared",
		"order_id", aggregate.ID().String(),
	)
	return nil
}
