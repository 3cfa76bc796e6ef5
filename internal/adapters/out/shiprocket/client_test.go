package shiprocket_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"orderdesk/internal/adapters/out/shiprocket"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

// carrierStub fakes the Shiprocket API: a login endpoint issuing tokens and
// the endpoints under test.
type carrierStub struct {
	t          *testing.T
	mux        *http.ServeMux
	logins     atomic.Int32
	validToken string
}

// handleFunc registers a handler for a single HTTP method, mirroring the
// method-prefixed ServeMux patterns available from Go 1.22.
func handleFunc(mux *http.ServeMux, method, path string, h http.HandlerFunc) {
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	})
}

func newCarrierStub(t *testing.T) *carrierStub {
	stub := &carrierStub{t: t, mux: http.NewServeMux(), validToken: "tok_1"}
	handleFunc(stub.mux, http.MethodPost, "/auth/login", func(w http.ResponseWriter, r *http.Request) {
		stub.logins.Add(1)
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "ops@example.com", creds["email"])
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"token": stub.validToken})
	})
	return stub
}

func (s *carrierStub) requireAuth(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+s.validToken
}

func newClient(t *testing.T, url string) *shiprocket.Client {
	t.Helper()
	client, err := shiprocket.NewClient(url, "ops@example.com", "secret")
	require.NoError(t, err)
	return client
}

func shipmentRequest(t *testing.T) ports.ShipmentRequest {
	t.Helper()
	addr, err := kernel.NewPostalAddress("12 MG Road", "Bengaluru", "Karnataka", "560001")
	require.NoError(t, err)
	return ports.ShipmentRequest{
		OrderID:      "order_R5aBcDeFgHiJkL",
		CustomerName: "Asha Rao",
		Email:        "asha@example.com",
		Phone:        "+919876543210",
		Address:      addr,
		PackageType:  order.PackagePrint,
		AmountMinor:  49900,
	}
}

func TestClient_CreateShipment(t *testing.T) {
	stub := newCarrierStub(t)
	var gotPayload map[string]any
	handleFunc(stub.mux, http.MethodPost, "/orders/create/adhoc", func(w http.ResponseWriter, r *http.Request) {
		require.True(t, stub.requireAuth(r))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"order_id": 4512345,
			"shipment_id": 4498765,
			"awb_code": "141123221084922",
			"courier_name": "Delhivery Surface"
		}`))
	})
	server := httptest.NewServer(stub.mux)
	defer server.Close()

	client := newClient(t, server.URL)
	shipment, err := client.CreateShipment(context.Background(), shipmentRequest(t))
	require.NoError(t, err)
	require.Equal(t, "4512345", shipment.CarrierOrderID)
	require.Equal(t, "4498765", shipment.ShipmentID)
	require.Equal(t, "141123221084922", shipment.AWBCode)
	require.Equal(t, "Delhivery Surface", shipment.CourierName)

	// One line item describing the printed book, priced in rupees.
	items, ok := gotPayload["order_items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	require.Equal(t, "JM_BOOK_001", item["sku"])
	require.EqualValues(t, 490110, item["hsn"])
	require.EqualValues(t, 499, item["selling_price"])

	require.Equal(t, "Prepaid", gotPayload["payment_method"])
	require.Equal(t, "560001", gotPayload["billing_pincode"])
	require.Equal(t, true, gotPayload["shipping_is_billing"])
	require.EqualValues(t, 0.5, gotPayload["weight"])
}

func TestClient_CreateShipment_TokenIsCached(t *testing.T) {
	stub := newCarrierStub(t)
	handleFunc(stub.mux, http.MethodPost, "/orders/create/adhoc", func(w http.ResponseWriter, r *http.Request) {
		require.True(t, stub.requireAuth(r))
		w.Write([]byte(`{"order_id": 1, "shipment_id": 2, "awb_code": "x", "courier_name": "y"}`))
	})
	server := httptest.NewServer(stub.mux)
	defer server.Close()

	client := newClient(t, server.URL)
	for i := 0; i < 3; i++ {
		_, err := client.CreateShipment(context.Background(), shipmentRequest(t))
		require.NoError(t, err)
	}

	require.EqualValues(t, 1, stub.logins.Load())
}

func TestClient_CreateShipment_ReauthenticatesOnceOn401(t *testing.T) {
	stub := newCarrierStub(t)
	var calls atomic.Int32
	handleFunc(stub.mux, http.MethodPost, "/orders/create/adhoc", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// The first token is rejected as expired.
			stub.validToken = "tok_2"
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		require.True(t, stub.requireAuth(r))
		w.Write([]byte(`{"order_id": 1, "shipment_id": 2, "awb_code": "x", "courier_name": "y"}`))
	})
	server := httptest.NewServer(stub.mux)
	defer server.Close()

	client := newClient(t, server.URL)
	_, err := client.CreateShipment(context.Background(), shipmentRequest(t))
	require.NoError(t, err)
	require.EqualValues(t, 2, calls.Load())
	require.EqualValues(t, 2, stub.logins.Load())
}

func TestClient_CreateShipment_Rejected(t *testing.T) {
	stub := newCarrierStub(t)
	handleFunc(stub.mux, http.MethodPost, "/orders/create/adhoc", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "Wrong Pickup location"}`))
	})
	server := httptest.NewServer(stub.mux)
	defer server.Close()

	client := newClient(t, server.URL)
	_, err := client.CreateShipment(context.Background(), shipmentRequest(t))
	require.ErrorIs(t, err, errs.ErrUpstreamRejected)
	require.Contains(t, err.Error(), "Wrong Pickup location")
}

func TestClient_TrackShipment(t *testing.T) {
	stub := newCarrierStub(t)
	handleFunc(stub.mux, http.MethodGet, "/courier/track/awb/141123221084922", func(w http.ResponseWriter, r *http.Request) {
		require.True(t, stub.requireAuth(r))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"tracking_data": {
				"track_status": 1,
				"shipment_track": [{
					"awb_code": "141123221084922",
					"current_status": "In Transit",
					"destination": "Bengaluru",
					"etd": "2025-06-05"
				}]
			}
		}`))
	})
	server := httptest.NewServer(stub.mux)
	defer server.Close()

	client := newClient(t, server.URL)
	status, err := client.TrackShipment(context.Background(), "141123221084922")
	require.NoError(t, err)
	require.Equal(t, "141123221084922", status.AWBCode)
	require.Equal(t, "In Transit", status.CurrentStatus)
	require.Equal(t, "Bengaluru", status.Destination)
	require.Equal(t, "2025-06-05", status.ETD)
}

func TestClient_CheckServiceability(t *testing.T) {
	stub := newCarrierStub(t)
	handleFunc(stub.mux, http.MethodGet, "/courier/serviceability/", func(w http.ResponseWriter, r *http.Request) {
		require.True(t, stub.requireAuth(r))
		require.Equal(t, "110001", r.URL.Query().Get("pickup_postcode"))
		require.Equal(t, "560001", r.URL.Query().Get("delivery_postcode"))
		require.Equal(t, "0.5", r.URL.Query().Get("weight"))
		require.Equal(t, "0", r.URL.Query().Get("cod"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"available_courier_companies": [
					{"courier_name": "Delhivery Surface", "rate": 85.5, "estimated_delivery_days": "4"},
					{"courier_name": "Xpressbees", "rate": 92.0, "estimated_delivery_days": "3"}
				]
			}
		}`))
	})
	server := httptest.NewServer(stub.mux)
	defer server.Close()

	client := newClient(t, server.URL)
	options, err := client.CheckServiceability(context.Background(), "110001", "560001", 0.5)
	require.NoError(t, err)
	require.Len(t, options, 2)
	require.Equal(t, "Delhivery Surface", options[0].Name)
	require.EqualValues(t, 85.5, options[0].Rate)
	require.Equal(t, "3", options[1].EstimatedDays)
}

func TestClient_AuthenticationFailure(t *testing.T) {
	mux := http.NewServeMux()
	handleFunc(mux, http.MethodPost, "/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newClient(t, server.URL)
	_, err := client.TrackShipment(context.Background(), "141123221084922")
	require.ErrorIs(t, err, errs.ErrUpstreamRejected)
}
