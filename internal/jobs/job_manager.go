package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationRetryJob *NotificationRetryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(flusher NotificationFlusher, logger *slog.Logger) *JobManager {
	return &JobManager{
		notificationRetryJob: NewNotificationRetryJob(flusher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification retry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationRetryJob.Stop()
}
