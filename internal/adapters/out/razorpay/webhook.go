package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"orderdesk/internal/core/ports"
)

// Webhook event names this system handles. Anything else decodes to
// ports.PaymentEventUnknown.
const (
	eventPaymentCaptured = "payment.captured"
	eventPaymentFailed   = "payment.failed"
	eventOrderPaid       = "order.paid"
)

// VerifyWebhookSignature reports whether signature is the hex-encoded
// HMAC-SHA256 of the exact raw body bytes under the webhook secret. The
// comparison is constant-time.
func (c *Client) VerifyWebhookSignature(rawBody []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// webhookEnvelope is the wire shape of a webhook delivery. Payment events
// carry a payment entity, order events an order entity.
type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity paymentEntity `json:"entity"`
		} `json:"payment"`
		Order struct {
			Entity orderEntity `json:"entity"`
		} `json:"order"`
	} `json:"payload"`
}

// paymentEntity is the payment record inside a webhook delivery.
type paymentEntity struct {
	ID               string `json:"id"`
	OrderID          string `json:"order_id"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	Email            string `json:"email"`
	Contact          string `json:"contact"`
	ErrorCode        string `json:"error_code"`
	ErrorDescription string `json:"error_description"`
}

// DecodeWebhookEvent parses a raw webhook body into a gateway event.
// Unhandled event names decode to ports.PaymentEventUnknown so the caller can
// acknowledge them; a malformed body is an error.
func (c *Client) DecodeWebhookEvent(rawBody []byte) (ports.PaymentEvent, error) {
	var envelope webhookEnvelope
	if err := json.Unmarshal(rawBody, &envelope); err != nil {
		return ports.PaymentEvent{}, fmt.Errorf("decode webhook body: %w", err)
	}

	event := ports.PaymentEvent{RawEventName: envelope.Event}
	payment := envelope.Payload.Payment.Entity

	switch envelope.Event {
	case eventPaymentCaptured:
		event.Kind = ports.PaymentEventCaptured
		event.GatewayOrderID = payment.OrderID
		event.PaymentID = payment.ID
		event.AmountMinor = payment.Amount
		event.Currency = payment.Currency
		event.Email = payment.Email
		event.Contact = payment.Contact

	case eventPaymentFailed:
		event.Kind = ports.PaymentEventFailed
		event.GatewayOrderID = payment.OrderID
		event.PaymentID = payment.ID
		event.ErrorCode = payment.ErrorCode
		event.ErrorReason = payment.ErrorDescription

	case eventOrderPaid:
		remote := envelope.Payload.Order.Entity
		event.Kind = ports.PaymentEventOrderPaid
		event.GatewayOrderID = remote.ID
		event.AmountMinor = remote.Amount
		event.Currency = remote.Currency

	default:
		event.Kind = ports.PaymentEventUnknown
	}

	return event, nil
}
