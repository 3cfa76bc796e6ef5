package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, amount kernel.Money, receipt string, notes map[string]string) (ports.PaymentOrder, error) {
	args := m.Called(ctx, amount, receipt, notes)
	return args.Get(0).(ports.PaymentOrder), args.Error(1)
}
func (m *MockPaymentGateway) VerifyWebhookSignature(rawBody []byte, signature string) bool {
	args := m.Called(rawBody, signature)
	return args.Bool(0)
}
func (m *MockPaymentGateway) DecodeWebhookEvent(rawBody []byte) (ports.PaymentEvent, error) {
	args := m.Called(rawBody)
	return args.Get(0).(ports.PaymentEvent), args.Error(1)
}

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

// Update applies mutate to the stubbed aggregate so tests exercise the real
// transition logic.
func (m *MockOrderRepository) Update(ctx context.Context, idOrGatewayID string, mutate func(*order.Order) error) (*order.Order, error) {
	args := m.Called(ctx, idOrGatewayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	aggregate := args.Get(0).(*order.Order)
	if err := mutate(aggregate); err != nil {
		return nil, err
	}
	return aggregate, args.Error(1)
}
func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockActivityLog struct{ mock.Mock }

func (m *MockActivityLog) Append(ctx context.Context, category activity.Category, entryType string, data map[string]any) {
	m.Called(ctx, category, entryType, data)
}
func (m *MockActivityLog) Query(ctx context.Context, category activity.Category, match func(activity.Entry) bool) ([]activity.Entry, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]activity.Entry), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderCreated(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockNotifier) NotifyPaymentConfirmed(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
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

func testTime() time.Time {
	return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMoney(t *testing.T) kernel.Money {
	t.Helper()
	price, err := kernel.NewMoney(49900, "INR")
	require.NoError(t, err)
	return price
}

func testAddress(t *testing.T) kernel.PostalAddress {
	t.Helper()
	addr, err := kernel.NewPostalAddress("12 MG Road", "Bengaluru", "Karnataka", "560001")
	require.NoError(t, err)
	return addr
}

func testCustomer(t *testing.T, addr kernel.PostalAddress) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("Asha Rao", "asha@example.com", "+919876543210",
		order.BirthDetails{Date: "1994-03-12", Time: "04:20", Place: "Mysuru"}, addr)
	require.NoError(t, err)
	return customer
}

func testOrder(t *testing.T, packageType order.PackageType) *order.Order {
	t.Helper()
	addr := kernel.PostalAddress{}
	if packageType.Physical() {
		addr = testAddress(t)
	}
	aggregate, err := order.NewOrder(kernel.NewUUID(), "order_R5aBcDeFgHiJkL", "ORD_1_abc",
		testMoney(t), packageType, testCustomer(t, addr), testTime())
	require.NoError(t, err)
	return aggregate
}
