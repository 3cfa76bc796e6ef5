package jsonstore

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/pkg/errs"
)

// DefaultMaxEntries caps each log file. When a log grows past the cap the
// oldest entries are dropped, keeping the files bounded on long-running
// deployments.
const DefaultMaxEntries = 10000

// logFileNames maps each activity category to its collection file.
func logFileNames() map[activity.Category]string {
	return map[activity.Category]string{
		activity.CategoryOrder:    "order_logs.json",
		activity.CategoryPayment:  "payment_logs.json",
		activity.CategoryShipment: "shipment_logs.json",
	}
}

// ActivityLog implements ports.ActivityLog on one JSON file per category.
type ActivityLog struct {
	stores     map[activity.Category]*fileStore
	maxEntries int
	logger     *slog.Logger
}

// NewActivityLog creates an activity log rooted at dataDir, creating the
// directory if needed. A maxEntries of 0 applies DefaultMaxEntries.
func NewActivityLog(dataDir string, maxEntries int, logger *slog.Logger) (*ActivityLog, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	stores := make(map[activity.Category]*fileStore, len(logFileNames()))
	for category, name := range logFileNames() {
		stores[category] = newFileStore(filepath.Join(dataDir, name))
	}

	return &ActivityLog{
		stores:     stores,
		maxEntries: maxEntries,
		logger:     logger.With("component", "activity_log"),
	}, nil
}

// Append records an entry. Persistence failures are logged and swallowed: an
// unwritable audit log must never fail the operation being audited.
func (l *ActivityLog) Append(ctx context.Context, category activity.Category, entryType string, data map[string]any) {
	store, ok := l.stores[category]
	if !ok {
		l.logger.ErrorContext(ctx, "append to unknown activity category",
			"category", string(category), "type", entryType)
		return
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	var entries []activity.Entry
	if err := store.load(&entries); err != nil {
		l.logger.ErrorContext(ctx, "activity log read failed", "category", string(category), "error", err)
		entries = nil
	}

	entries = append(entries, activity.NewEntry(entryType, data, time.Now()))
	if len(entries) > l.maxEntries {
		entries = entries[len(entries)-l.maxEntries:]
	}

	if err := store.save(entries); err != nil {
		l.logger.ErrorContext(ctx, "activity log write failed", "category", string(category), "error", err)
	}
}

// Query returns the entries of a category matching the predicate, in stored
// order. A nil predicate matches everything.
func (l *ActivityLog) Query(_ context.Context, category activity.Category, match func(activity.Entry) bool) ([]activity.Entry, error) {
	store, ok := l.stores[category]
	if !ok {
		return nil, errs.NewValueIsInvalidError("category")
	}

	store.mu.RLock()
	defer store.mu.RUnlock()

	var entries []activity.Entry
	if err := store.load(&entries); err != nil {
		return nil, err
	}

	if match == nil {
		return entries, nil
	}

	matched := make([]activity.Entry, 0, len(entries))
	for _, entry := range entries {
		if match(entry) {
			matched = append(matched, entry)
		}
	}

	return matched, nil
}
