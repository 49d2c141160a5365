package jobs

import (
	"context"
	"log/slog"

	"shopfloor/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// QueueRecomputeJob manages the scheduled recomputation of all queues.
// Runs every minute to restore dense global and per-location ranks after
// shipments, rush changes, and manual edits have accumulated.
type QueueRecomputeJob struct {
	handler commands.RecomputeQueuesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQueueRecomputeJob creates a new job for recomputing queues.
// Uses RecomputeQueuesCommandHandler to run the full sweep every minute.
func NewQueueRecomputeJob(handler commands.RecomputeQueuesCommandHandler, logger *slog.Logger) *QueueRecomputeJob {
	return &QueueRecomputeJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "queue_recompute_job"),
	}
}

// Start begins the queue recompute job to run every minute.
func (j *QueueRecomputeJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRecomputeQueuesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Queue recompute job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue recompute job started (running every minute)")
	return nil
}

// Stop stops the queue recompute job.
func (j *QueueRecomputeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue recompute job stopped")
}
