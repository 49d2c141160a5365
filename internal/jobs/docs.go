// Package jobs provides scheduled background tasks for the scheduling system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for keeping the queues consistent.
//
// # Available Jobs
//
// 1. QueueRecomputeJob - Runs every minute to re-rank the global queue and every location queue
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(recomputeQueuesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The recompute job uses the cron expression "0 * * * * *" which means it runs
// at the top of every minute. Commands that disturb the ranking (shipments,
// rush changes, manual moves) already rebalance the queues they touch; the
// periodic sweep restores density across all queues at once.
//
// # Error Handling
//
// - Recompute failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
