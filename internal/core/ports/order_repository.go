package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Lookups accept either the local order id or the gateway order id, mirroring
// how callers reference orders: the storefront knows the local id, payment
// webhooks only know the gateway id.
type OrderRepository interface {
	// Add persists a new order aggregate. Fails with errs.ErrDuplicateKey if
	// an order with the same local id already exists. The write is durable
	// before Add returns.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by local or gateway id. Fails with
	// errs.ErrObjectNotFound when no order matches.
	Get(ctx context.Context, idOrGatewayID string) (*order.Order, error)

	// Update loads the order, applies mutate to it and persists the result,
	// returning the updated aggregate. The read-modify-write cycle is
	// serialized per order id, so two concurrent updates to the same order
	// cannot lose each other's changes. Fails with errs.ErrObjectNotFound
	// when no order matches; an error from mutate aborts without persisting.
	Update(ctx context.Context, idOrGatewayID string, mutate func(*order.Order) error) (*order.Order, error)

	// List returns all stored orders in insertion order.
	List(ctx context.Context) ([]*order.Order, error)
}
