package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"github.com/labstack/echo/v4"
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

// testEnv bundles the echo instance, the server and every mock behind it.
type testEnv struct {
	echo        *echo.Echo
	gateway     *MockPaymentGateway
	orders      *MockOrderRepository
	activityLog *MockActivityLog
	notifier    *MockNotifier
	carrier     *MockShippingCarrier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		echo:        echo.New(),
		gateway:     &MockPaymentGateway{},
		orders:      &MockOrderRepository{},
		activityLog: &MockActivityLog{},
		notifier:    &MockNotifier{},
		carrier:     &MockShippingCarrier{},
	}
	env.echo.Validator = httpin.NewRequestValidator()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	shipmentHandler := commands.NewCreateShipmentCommandHandler(env.carrier, env.activityLog, logger)

	server := httpin.NewServer(
		commands.NewCreateOrderCommandHandler(env.gateway, env.orders, env.activityLog, env.notifier, logger),
		shipmentHandler,
		commands.NewApplyPaymentEventCommandHandler(env.orders, env.activityLog, env.notifier, &shipmentHandler, logger),
		env.gateway,
		queries.NewGetOrderQueryHandler(env.orders),
		queries.NewListOrdersQueryHandler(env.orders),
		queries.NewTrackOrderQueryHandler(env.orders, env.activityLog),
		queries.NewTrackShipmentQueryHandler(env.activityLog),
		queries.NewGetCarrierTrackingQueryHandler(env.carrier, env.activityLog),
		queries.NewCheckServiceabilityQueryHandler(env.carrier, "110001"),
		queries.NewGetActivityLogQueryHandler(env.activityLog),
		queries.NewGetSummaryQueryHandler(env.orders, env.activityLog),
		"test",
	)
	server.RegisterRoutes(env.echo)
	return env
}

// do runs one request through the router and returns the recorder.
func (env *testEnv) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func storedOrder(t *testing.T, packageType order.PackageType) *order.Order {
	t.Helper()

	addr := kernel.PostalAddress{}
	if packageType.Physical() {
		var err error
		addr, err = kernel.NewPostalAddress("12 MG Road", "Bengaluru", "Karnataka", "560001")
		require.NoError(t, err)
	}

	price, err := kernel.NewMoney(49900, "INR")
	require.NoError(t, err)
	customer, err := order.NewCustomer("Asha Rao", "asha@example.com", "+919876543210",
		order.BirthDetails{Date: "1994-03-12", Time: "04:20", Place: "Mysuru"}, addr)
	require.NoError(t, err)

	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	aggregate, err := order.NewOrder(kernel.NewUUID(), "order_R5aBcDeFgHiJkL", "ORD_1_abc",
		price, packageType, customer, createdAt)
	require.NoError(t, err)
	return aggregate
}
