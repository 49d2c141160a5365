package commands

import (
	"errors"

	"shopfloor/internal/pkg/guard"
)

var ErrRecomputeQueuesCommandIsNotConstructed = errors.New(
	"RecomputeQueuesCommand must be created via NewRecomputeQueuesCommand constructor",
)

// RecomputeQueuesCommand triggers the full scheduling sweep: the global
// queue and every location queue are rebalanced in one transaction.
//
// Example:
//
//	cmd := NewRecomputeQueuesCommand()
//	handler := NewRecomputeQueuesCommandHandler(uowFactory)
//
//	// Run periodically to keep all queues normalized
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Queue sweep failed: %v", err)
//	}
type RecomputeQueuesCommand struct {
	guard guard.ConstructorGuard
}

// NewRecomputeQueuesCommand creates a command to trigger the full sweep.
// This is a parameterless command covering every queue in the system.
func NewRecomputeQueuesCommand() RecomputeQueuesCommand {
	command := RecomputeQueuesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecomputeQueuesCommandIsNotConstructed if validation fails.
func (c *RecomputeQueuesCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeQueuesCommandIsNotConstructed)
}
