package jsonstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// ordersFileName is the collection file holding all order records.
const ordersFileName = "orders.json"

// OrderRepository implements ports.OrderRepository on a JSON file.
//
// The store mutex covers every read-modify-write cycle, so Update calls are
// serialized across all orders. With the traffic this store is built for that
// is a feature, not a bottleneck: it makes lost updates impossible without a
// database.
type OrderRepository struct {
	store *fileStore
}

// NewOrderRepository creates a repository rooted at dataDir, creating the
// directory if needed.
func NewOrderRepository(dataDir string) (*OrderRepository, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}

	return &OrderRepository{
		store: newFileStore(filepath.Join(dataDir, ordersFileName)),
	}, nil
}

// Add persists a new order. Fails with errs.ErrDuplicateKey when an order
// with the same local or gateway id already exists.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var dtos []orderDTO
	if err := r.store.load(&dtos); err != nil {
		return err
	}

	for _, dto := range dtos {
		if dto.ID == aggregate.ID().String() || dto.GatewayOrderID == aggregate.GatewayOrderID() {
			return errs.NewDuplicateKeyError("order", aggregate.ID().String())
		}
	}

	dtos = append(dtos, fromDomain(aggregate))
	return r.store.save(dtos)
}

// Get retrieves an order by local or gateway id.
func (r *OrderRepository) Get(_ context.Context, idOrGatewayID string) (*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []orderDTO
	if err := r.store.load(&dtos); err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		if dto.ID == idOrGatewayID || dto.GatewayOrderID == idOrGatewayID {
			return toDomain(dto)
		}
	}

	return nil, errs.NewObjectNotFoundError("order", idOrGatewayID)
}

// Update loads the order, applies mutate and persists the result, all under
// the store lock. An error from mutate aborts without persisting.
func (r *OrderRepository) Update(_ context.Context, idOrGatewayID string, mutate func(*order.Order) error) (*order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var dtos []orderDTO
	if err := r.store.load(&dtos); err != nil {
		return nil, err
	}

	for i, dto := range dtos {
		if dto.ID != idOrGatewayID && dto.GatewayOrderID != idOrGatewayID {
			continue
		}

		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		if err = mutate(aggregate); err != nil {
			return nil, err
		}

		dtos[i] = fromDomain(aggregate)
		if err = r.store.save(dtos); err != nil {
			return nil, err
		}
		return aggregate, nil
	}

	return nil, errs.NewObjectNotFoundError("order", idOrGatewayID)
}

// List returns all stored orders in insertion order.
func (r *OrderRepository) List(_ context.Context) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []orderDTO
	if err := r.store.load(&dtos); err != nil {
		return nil, err
	}

	aggregates := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}
