package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// Notifier is the best-effort outbound channel recording orders in the
// operations spreadsheet. Failures are the notifier's problem: callers treat
// both methods as fire-and-forget and never fail the primary operation when a
// notification cannot be delivered. Implementations queue failed payloads for
// later redelivery.
type Notifier interface {
	// NotifyOrderCreated records a freshly created order.
	NotifyOrderCreated(ctx context.Context, aggregate *order.Order) error

	// NotifyPaymentConfirmed records a captured payment for an order.
	NotifyPaymentConfirmed(ctx context.Context, aggregate *order.Order) error
}
