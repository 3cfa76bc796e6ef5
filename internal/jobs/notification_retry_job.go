package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// NotificationFlusher redelivers queued notification rows. Implemented by the
// spreadsheet notifier, which queues rows when the sheet endpoint is down.
type NotificationFlusher interface {
	// Flush retries every queued row once and returns how many were
	// delivered.
	Flush(ctx context.Context) int

	// PendingCount reports how many rows are waiting for redelivery.
	PendingCount() int
}

// NotificationRetryJob periodically redelivers notification rows that failed
// their first delivery. Runs every minute; a row that keeps failing stays
// queued until the endpoint recovers or the queue cap evicts it.
type NotificationRetryJob struct {
	flusher NotificationFlusher
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationRetryJob creates a job that flushes the notifier's pending
// queue on a fixed schedule.
func NewNotificationRetryJob(flusher NotificationFlusher, logger *slog.Logger) *NotificationRetryJob {
	return &NotificationRetryJob{
		flusher: flusher,
		cron:    cron.New(),
		logger:  logger.With("component", "notification_retry_job"),
	}
}

// Start begins the retry job, running once per minute.
func (j *NotificationRetryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		pending := j.flusher.PendingCount()
		if pending == 0 {
			return
		}

		delivered := j.flusher.Flush(ctx)
		j.logger.InfoContext(ctx, "Notification retry pass finished",
			"pending", pending, "delivered", delivered)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retry job started (running every minute)")
	return nil
}

// Stop stops the retry job.
func (j *NotificationRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification retry job stopped")
}
