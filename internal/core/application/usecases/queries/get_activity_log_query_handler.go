package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/ports"
)

// GetActivityLogQueryHandler serves the recent entries of an activity log
// category.
type GetActivityLogQueryHandler struct {
	activityLog ports.ActivityLog
}

// NewGetActivityLogQueryHandler creates a handler for activity log views.
func NewGetActivityLogQueryHandler(activityLog ports.ActivityLog) GetActivityLogQueryHandler {
	return GetActivityLogQueryHandler{activityLog: activityLog}
}

// Handle returns the category's entries in stored order, trimmed to the most
// recent Limit entries when a limit is set.
func (h GetActivityLogQueryHandler) Handle(ctx context.Context, query GetActivityLogQuery) ([]activity.Entry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.activityLog.Query(ctx, query.Category(), nil)
	if err != nil {
		return nil, err
	}

	if limit := query.Limit(); limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	return entries, nil
}
