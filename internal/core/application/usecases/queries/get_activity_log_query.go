package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/pkg/guard"
)

// ErrGetActivityLogQueryIsNotConstructed is returned when a
// GetActivityLogQuery was not created via NewGetActivityLogQuery.
var ErrGetActivityLogQueryIsNotConstructed = errors.New(
	"GetActivityLogQuery must be created via NewGetActivityLogQuery constructor",
)

// GetActivityLogQuery retrieves the recent entries of one activity log
// category. A limit of 0 returns everything.
type GetActivityLogQuery struct {
	category activity.Category
	limit    int

	guard guard.ConstructorGuard
}

// NewGetActivityLogQuery creates a query over one activity log category.
// Negative limits are normalized to 0 (no limit).
func NewGetActivityLogQuery(category activity.Category, limit int) (GetActivityLogQuery, error) {
	if err := category.Validate(); err != nil {
		return GetActivityLogQuery{}, err
	}
	if limit < 0 {
		limit = 0
	}

	return GetActivityLogQuery{
		category: category,
		limit:    limit,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActivityLogQuery) Validate() error {
	return q.guard.Validate(ErrGetActivityLogQueryIsNotConstructed)
}

// Category returns the queried log category.
func (q GetActivityLogQuery) Category() activity.Category {
	return q.category
}

// Limit returns the maximum number of entries to return, 0 for all.
func (q GetActivityLogQuery) Limit() int {
	return q.limit
}
