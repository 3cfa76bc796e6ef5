// Package razorpay implements the payment gateway port against the Razorpay
// Orders API: order creation over HTTP and webhook signature verification and
// decoding.
package razorpay

import (
	"context"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

// requestTimeout bounds every outbound gateway call.
const requestTimeout = 10 * time.Second

// Client implements ports.PaymentGateway against the Razorpay REST API.
type Client struct {
	http          *resty.Client
	webhookSecret string
}

// NewClient creates a gateway client. baseURL is the API root
// (https://api.razorpay.com/v1 in production); keyID and keySecret
// authenticate API calls; webhookSecret verifies inbound webhook signatures.
func NewClient(baseURL, keyID, keySecret, webhookSecret string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("razorpay api url")
	}
	if keyID == "" || keySecret == "" {
		return nil, errs.NewValueIsRequiredError("razorpay api credentials")
	}
	if webhookSecret == "" {
		return nil, errs.NewValueIsRequiredError("razorpay webhook secret")
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(keyID, keySecret).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:          http,
		webhookSecret: webhookSecret,
	}, nil
}

// createOrderRequest is the Orders API request body.
type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// orderEntity is the Orders API representation of an order.
type orderEntity struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// apiError is the error envelope the API wraps failures in.
type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder creates a payment order. Amounts travel in minor currency units
// exactly as the domain holds them. Network failures, timeouts and 5xx
// responses map to errs.ErrUpstreamUnavailable; 4xx responses map to
// errs.ErrUpstreamRejected with the provider's error description.
func (c *Client) CreateOrder(ctx context.Context, amount kernel.Money, receipt string, notes map[string]string) (ports.PaymentOrder, error) {
	if err := amount.Validate(); err != nil {
		return ports.PaymentOrder{}, err
	}

	var (
		created orderEntity
		failure apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createOrderRequest{
			Amount:   amount.AmountMinor(),
			Currency: amount.Currency(),
			Receipt:  receipt,
			Notes:    notes,
		}).
		SetResult(&created).
		SetError(&failure).
		Post("/orders")
	if err != nil {
		return ports.PaymentOrder{}, errs.NewUpstreamUnavailableError("razorpay", err)
	}

	if resp.IsError() {
		detail := failure.Error.Description
		if detail == "" {
			detail = resp.Status()
		}
		if resp.StatusCode() >= 500 {
			return ports.PaymentOrder{}, errs.NewUpstreamUnavailableError("razorpay",
				fmt.Errorf("order creation failed: %s", detail))
		}
		return ports.PaymentOrder{}, errs.NewUpstreamRejectedError("razorpay", resp.StatusCode(), detail)
	}

	return ports.PaymentOrder{
		GatewayOrderID: created.ID,
		AmountMinor:    created.Amount,
		Currency:       created.Currency,
		Receipt:        created.Receipt,
	}, nil
}
