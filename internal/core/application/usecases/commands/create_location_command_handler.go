package commands

import (
	"context"

	"shopfloor/internal/core/domain/model/location"
)

// CreateLocationCommandHandler handles the business logic for extending the
// routing catalog. A duplicate routing sequence key surfaces as a conflict
// from the store's unique index.
type CreateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewCreateLocationCommandHandler creates a handler for location intake.
// Requires a LocationUoWFactory for transactional persistence.
func NewCreateLocationCommandHandler(uowFactory LocationUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location intake command.
func (h CreateLocationCommandHandler) Handle(ctx context.Context, command CreateLocationCommand) error {
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

	aggregate, err := location.NewLocation(
		command.LocationID(),
		command.Name(),
		command.Sequence(),
		command.IsPrimary(),
		command.SkipAutoQueue(),
		command.CountMultiplier(),
		command.NoCount(),
	)
	if err != nil {
		return err
	}

	if err = uow.LocationRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
