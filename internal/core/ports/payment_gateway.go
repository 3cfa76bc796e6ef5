package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
)

// PaymentOrder is the remote order issued by the payment gateway.
type PaymentOrder struct {
	GatewayOrderID string
	AmountMinor    int64
	Currency       string
	Receipt        string
}

// PaymentEventKind classifies the webhook events the gateway delivers.
type PaymentEventKind int

const (
	// PaymentEventUnknown is any event tag this system does not handle.
	// Unknown events are acknowledged and ignored, never an error.
	PaymentEventUnknown PaymentEventKind = iota

	// PaymentEventCaptured is a payment.captured event.
	PaymentEventCaptured

	// PaymentEventFailed is a payment.failed event.
	PaymentEventFailed

	// PaymentEventOrderPaid is an order.paid event.
	PaymentEventOrderPaid
)

// PaymentEvent is a decoded gateway webhook event. Only the fields relevant to
// the event kind are populated.
type PaymentEvent struct {
	Kind           PaymentEventKind
	RawEventName   string
	GatewayOrderID string
	PaymentID      string
	AmountMinor    int64
	Currency       string
	Email          string
	Contact        string
	ErrorCode      string
	ErrorReason    string
}

// PaymentGateway is the outbound contract with the payment provider.
type PaymentGateway interface {
	// CreateOrder creates a remote payment order for the given amount and
	// merchant receipt. The notes map travels with the payment intent and
	// shows up in the provider dashboard. Fails with
	// errs.ErrUpstreamUnavailable on network errors, timeouts and 5xx
	// responses, and with errs.ErrUpstreamRejected when the provider refuses
	// the order (for example an amount below its minimum).
	CreateOrder(ctx context.Context, amount kernel.Money, receipt string, notes map[string]string) (PaymentOrder, error)

	// VerifyWebhookSignature reports whether signature is the provider's HMAC
	// of the exact raw body bytes. Implementations must compare in constant
	// time.
	VerifyWebhookSignature(rawBody []byte, signature string) bool

	// DecodeWebhookEvent parses a raw webhook body. Unrecognized event tags
	// decode to PaymentEventUnknown rather than an error.
	DecodeWebhookEvent(rawBody []byte) (PaymentEvent, error)
}
