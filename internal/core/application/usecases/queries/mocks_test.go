package queries_test

import (
	"context"
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, idOrGatewayID string) (*order.Order, error) {
	args := m.Called(ctx, idOrGatewayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Update(ctx context.Context, idOrGatewayID string, mutate func(*order.Order) error) (*order.Order, error) {
	args := m.Called(ctx, idOrGatewayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// fakeActivityLog is an in-memory ActivityLog holding canned entries per
// category.
type fakeActivityLog struct {
	entries map[activity.Category][]activity.Entry
}

func newFakeActivityLog() *fakeActivityLog {
	return &fakeActivityLog{entries: map[activity.Category][]activity.Entry{}}
}

func (f *fakeActivityLog) Append(_ context.Context, category activity.Category, entryType string, data map[string]any) {
	f.entries[category] = append(f.entries[category], activity.NewEntry(entryType, data, time.Now()))
}

func (f *fakeActivityLog) Query(_ context.Context, category activity.Category, match func(activity.Entry) bool) ([]activity.Entry, error) {
	var out []activity.Entry
	for _, entry := range f.entries[category] {
		if match == nil || match(entry) {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeActivityLog) add(category activity.Category, entryType string, data map[string]any, at time.Time) {
	f.entries[category] = append(f.entries[category], activity.NewEntry(entryType, data, at))
}

type MockShippingCarrier struct{ mock.Mock }

func (m *MockShippingCarrier) CreateShipment(ctx context.Context, req ports.ShipmentRequest) (ports.Shipment, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.Shipment), args.Error(1)
}
func (m *MockShippingCarrier) TrackShipment(ctx context.Context, awbCode string) (ports.TrackingStatus, error) {
	args := m.Called(ctx, awbCode)
	return args.Get(0).(ports.TrackingStatus), args.Error(1)
}
func (m *MockShippingCarrier) CheckServiceability(ctx context.Context, pickupPincode, deliveryPincode string, weightKg float64) ([]ports.CourierOption, error) {
	args := m.Called(ctx, pickupPincode, deliveryPincode, weightKg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.CourierOption), args.Error(1)
}

func storedOrder(t *testing.T, packageType order.PackageType, createdAt time.Time) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(49900, "INR")
	require.NoError(t, err)

	addr := kernel.PostalAddress{}
	if packageType.Physical() {
		addr, err = kernel.NewPostalAddress("12 MG Road", "Bengaluru", "Karnataka", "560001")
		require.NoError(t, err)
	}

	customer, err := order.NewCustomer("Asha Rao", "asha@example.com", "+919876543210",
		order.BirthDetails{Date: "1994-03-12", Time: "04:20", Place: "Mysuru"}, addr)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), "order_"+kernel.NewUUID().String()[:8],
		"ORD_1_abc", price, packageType, customer, createdAt)
	require.NoError(t, err)
	return aggregate
}
