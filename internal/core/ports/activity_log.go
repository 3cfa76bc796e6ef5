package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/activity"
)

// ActivityLog is the append-only event record kept per domain category.
type ActivityLog interface {
	// Append records an entry in the given category. Append never returns an
	// error: log persistence failures must not fail the caller's primary
	// operation, so implementations swallow them and report through their
	// diagnostic channel instead.
	Append(ctx context.Context, category activity.Category, entryType string, data map[string]any)

	// Query returns the entries of a category matching the predicate, in
	// stored (roughly chronological) order. A nil predicate matches
	// everything.
	Query(ctx context.Context, category activity.Category, match func(activity.Entry) bool) ([]activity.Entry, error)
}
