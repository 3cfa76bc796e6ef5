package queries

import (
	"context"

	"orderdesk/internal/core/ports"
)

// ListOrdersQueryHandler serves the full order listing from the order store.
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for the order listing.
func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle returns every stored order as a read model, in insertion order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, orderResponseFrom(aggregate))
	}

	return responses, nil
}
