package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/pkg/guard"
)

// ErrGetSummaryQueryIsNotConstructed is returned when a GetSummaryQuery was
// not created via NewGetSummaryQuery.
var ErrGetSummaryQueryIsNotConstructed = errors.New(
	"GetSummaryQuery must be created via NewGetSummaryQuery constructor",
)

// summaryRecentLimit caps the recent orders, payments and shipments lists in
// the summary.
const summaryRecentLimit = 10

// GetSummaryQuery computes the operations dashboard summary: order counts by
// status and package, total revenue and the most recent activity.
type GetSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSummaryQuery creates a summary query.
func NewGetSummaryQuery() GetSummaryQuery {
	return GetSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetSummaryQueryIsNotConstructed)
}

// OrdersByStatus breaks the order count down by lifecycle state.
type OrdersByStatus struct {
	Created   int `json:"created"`
	Paid      int `json:"paid"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

// OrdersByPackage breaks the order count down by package variant.
type OrdersByPackage struct {
	PDF   int `json:"pdf"`
	Print int `json:"print"`
}

// SummaryResponse is the operations dashboard read model. Revenue counts paid
// and completed orders only, in minor currency units.
type SummaryResponse struct {
	TotalOrders     int              `json:"total_orders"`
	OrdersByStatus  OrdersByStatus   `json:"orders_by_status"`
	OrdersByPackage OrdersByPackage  `json:"orders_by_package"`
	TotalRevenue    int64            `json:"total_revenue"`
	RecentOrders    []OrderResponse  `json:"recent_orders"`
	RecentPayments  []activity.Entry `json:"recent_payments"`
	RecentShipments []activity.Entry `json:"recent_shipments"`
}
