package queries

import (
	"context"
	"sort"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// GetSummaryQueryHandler computes the operations summary from the order store
// and the activity logs.
type GetSummaryQueryHandler struct {
	orders      ports.OrderRepository
	activityLog ports.ActivityLog
}

// NewGetSummaryQueryHandler creates a handler for the operations summary.
func NewGetSummaryQueryHandler(orders ports.OrderRepository, activityLog ports.ActivityLog) GetSummaryQueryHandler {
	return GetSummaryQueryHandler{orders: orders, activityLog: activityLog}
}

// Handle aggregates order counts, revenue and recent activity. Revenue sums
// the amounts of paid and completed orders.
func (h GetSummaryQueryHandler) Handle(ctx context.Context, query GetSummaryQuery) (SummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return SummaryResponse{}, err
	}

	aggregates, err := h.orders.List(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}

	response := SummaryResponse{TotalOrders: len(aggregates)}
	for _, aggregate := range aggregates {
		switch aggregate.Status() {
		case order.Created:
			response.OrdersByStatus.Created++
		case order.Paid:
			response.OrdersByStatus.Paid++
			response.TotalRevenue += aggregate.Price().AmountMinor()
		case order.Completed:
			response.OrdersByStatus.Completed++
			response.TotalRevenue += aggregate.Price().AmountMinor()
		case order.Failed:
			response.OrdersByStatus.Failed++
		}

		switch aggregate.PackageType() {
		case order.PackagePDF:
			response.OrdersByPackage.PDF++
		case order.PackagePrint:
			response.OrdersByPackage.Print++
		}
	}

	recent := make([]*order.Order, len(aggregates))
	copy(recent, aggregates)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt().After(recent[j].CreatedAt())
	})
	if len(recent) > summaryRecentLimit {
		recent = recent[:summaryRecentLimit]
	}
	response.RecentOrders = make([]OrderResponse, 0, len(recent))
	for _, aggregate := range recent {
		response.RecentOrders = append(response.RecentOrders, orderResponseFrom(aggregate))
	}

	response.RecentPayments, err = h.recentEntries(ctx, activity.CategoryPayment, activity.TypePaymentCaptured)
	if err != nil {
		return SummaryResponse{}, err
	}
	response.RecentShipments, err = h.recentEntries(ctx, activity.CategoryShipment, activity.TypeShipmentCreated)
	if err != nil {
		return SummaryResponse{}, err
	}

	return response, nil
}

// recentEntries returns the newest entries of one type, newest first.
func (h GetSummaryQueryHandler) recentEntries(ctx context.Context, category activity.Category, entryType string) ([]activity.Entry, error) {
	entries, err := h.activityLog.Query(ctx, category, func(entry activity.Entry) bool {
		return entry.Type == entryType
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	if len(entries) > summaryRecentLimit {
		entries = entries[:summaryRecentLimit]
	}

	return entries, nil
}
