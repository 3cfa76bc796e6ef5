package queries

import (
	"context"

	"orderdesk/internal/core/ports"
)

// GetOrderQueryHandler serves single order lookups from the order store.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for order lookups.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle resolves the order and flattens it into the read model. Fails with
// errs.ErrObjectNotFound when no order matches the key.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.IDOrGatewayID())
	if err != nil {
		return OrderResponse{}, err
	}

	return orderResponseFrom(aggregate), nil
}
