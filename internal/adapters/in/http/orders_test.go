package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderEndpoint_Success(t *testing.T) {
	env := newTestEnv(t)
	env.gateway.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(ports.PaymentOrder{GatewayOrderID: "order_R5aBcDeFgHiJkL", AmountMinor: 49900, Currency: "INR"}, nil)
	env.orders.On("Add", mock.Anything, mock.Anything).Return(nil)
	env.activityLog.On("Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	env.notifier.On("NotifyOrderCreated", mock.Anything, mock.Anything).Return(nil)

	rec := env.do(http.MethodPost, "/api/orders/create", `{
		"amount": 49900,
		"customer_name": "Asha Rao",
		"customer_email": "asha@example.com",
		"package_type": "print",
		"whatsapp": "+919876543210",
		"address": "12 MG Road",
		"city": "Bengaluru",
		"state": "Karnataka",
		"pincode": "560001"
	}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])
	require.Equal(t, "order_R5aBcDeFgHiJkL", body["order_id"])
	require.Equal(t, float64(49900), body["amount"])
	require.Equal(t, "INR", body["currency"])
	require.NotEmpty(t, body["receipt"])
	require.NotEmpty(t, body["local_order_id"])
}

func TestCreateOrderEndpoint_MissingEmailIsRejected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/orders/create", `{
		"amount": 49900,
		"customer_name": "Asha Rao",
		"package_type": "pdf"
	}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env.gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderEndpoint_PrintWithoutAddressIsRejected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/orders/create", `{
		"amount": 49900,
		"customer_name": "Asha Rao",
		"customer_email": "asha@example.com",
		"package_type": "print"
	}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env.gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderEndpoint_PdfNeedsNoAddress(t *testing.T) {
	env := newTestEnv(t)
	// No currency in the request: the default must already be applied by the
	// time the gateway is called.
	env.gateway.On("CreateOrder", mock.Anything, mock.MatchedBy(func(m kernel.Money) bool {
		return m.Currency() == kernel.DefaultCurrency
	}), mock.Anything, mock.Anything).
		Return(ports.PaymentOrder{GatewayOrderID: "order_pdf001", AmountMinor: 29900, Currency: "INR"}, nil)
	env.orders.On("Add", mock.Anything, mock.Anything).Return(nil)
	env.activityLog.On("Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	env.notifier.On("NotifyOrderCreated", mock.Anything, mock.Anything).Return(nil)

	rec := env.do(http.MethodPost, "/api/orders/create", `{
		"amount": 29900,
		"customer_name": "Asha Rao",
		"customer_email": "asha@example.com",
		"package_type": "pdf"
	}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetOrderEndpoint_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.orders.On("Get", mock.Anything, "order_unknown").
		Return(nil, errs.NewObjectNotFoundError("order", "order_unknown"))

	rec := env.do(http.MethodGet, "/api/orders/order_unknown", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOrdersEndpoint(t *testing.T) {
	env := newTestEnv(t)
	aggregate := storedOrder(t, order.PackagePrint)
	env.orders.On("List", mock.Anything).Return([]*order.Order{aggregate}, nil)

	rec := env.do(http.MethodGet, "/api/orders", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	require.Equal(t, "order_R5aBcDeFgHiJkL", body[0]["razorpay_order_id"])
	require.Equal(t, "created", body[0]["status"])
}
