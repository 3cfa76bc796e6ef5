package queries

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

// ErrListOrdersQueryIsNotConstructed is returned when a ListOrdersQuery was
// not created via NewListOrdersQuery.
var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves all orders in insertion order. This is a
// parameterless query serving the admin order listing.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to retrieve all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
