// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. NotificationRetryJob - Runs every minute to redeliver spreadsheet
// notification rows that failed their first delivery
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the notifier to flush
//	jobManager := jobs.NewJobManager(notifier, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The retry job never fails a pass: rows that cannot be delivered stay in the
// notifier's queue for the next pass, and the queue itself drops its oldest
// rows when full.
package jobs
