// Package sheets implements the notifier port against a Google Apps Script
// web app that appends rows to the operations spreadsheet.
//
// Delivery is best-effort with redelivery: a payload that cannot be posted is
// queued in memory and retried by the notification retry job until it goes
// through or the queue overflows.
package sheets

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

const (
	// requestTimeout bounds every outbound notification call.
	requestTimeout = 10 * time.Second

	// maxPending caps the redelivery queue. When full, the oldest payload is
	// dropped; a spreadsheet outage must not grow memory without bound.
	maxPending = 1000
)

// rowPayload is the flat row the spreadsheet script expects.
type rowPayload struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Whatsapp   string `json:"whatsapp"`
	BirthDate  string `json:"birthDate"`
	BirthTime  string `json:"birthTime"`
	BirthPlace string `json:"birthPlace"`
	Package    string `json:"package"`
	Amount     int64  `json:"amount"`
	OrderID    string `json:"orderId"`
	PaymentID  string `json:"paymentId,omitempty"`
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
}

// Notifier implements ports.Notifier by posting rows to the spreadsheet web
// app.
type Notifier struct {
	http   *resty.Client
	url    string
	logger *slog.Logger

	mu      sync.Mutex
	pending []rowPayload
}

// NewNotifier creates a spreadsheet notifier posting to url.
func NewNotifier(url string, logger *slog.Logger) (*Notifier, error) {
	if url == "" {
		return nil, errs.NewValueIsRequiredError("google sheets url")
	}

	return &Notifier{
		http:   resty.New().SetTimeout(requestTimeout),
		url:    url,
		logger: logger.With("component", "sheets_notifier"),
	}, nil
}

// NotifyOrderCreated records a freshly created order as a row with status
// "created". A failed post queues the row for redelivery and reports the
// error; callers treat it as non-fatal.
func (n *Notifier) NotifyOrderCreated(ctx context.Context, aggregate *order.Order) error {
	return n.deliver(ctx, n.rowFor(aggregate))
}

// NotifyPaymentConfirmed records a captured payment as a row with the order's
// current status and payment reference.
func (n *Notifier) NotifyPaymentConfirmed(ctx context.Context, aggregate *order.Order) error {
	return n.deliver(ctx, n.rowFor(aggregate))
}

// rowFor flattens an order into a spreadsheet row.
func (n *Notifier) rowFor(aggregate *order.Order) rowPayload {
	customer := aggregate.Customer()
	return rowPayload{
		FullName:   customer.Name(),
		Email:      customer.Email(),
		Whatsapp:   customer.Whatsapp(),
		BirthDate:  customer.Birth().Date,
		BirthTime:  customer.Birth().Time,
		BirthPlace: customer.Birth().Place,
		Package:    aggregate.PackageType().String(),
		Amount:     aggregate.Price().AmountMinor(),
		OrderID:    aggregate.GatewayOrderID(),
		PaymentID:  aggregate.PaymentID(),
		Status:     aggregate.Status().String(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

// deliver posts one row, queueing it for redelivery on failure.
func (n *Notifier) deliver(ctx context.Context, row rowPayload) error {
	if err := n.post(ctx, row); err != nil {
		n.enqueue(row)
		return err
	}
	return nil
}

// post sends one row to the web app.
func (n *Notifier) post(ctx context.Context, row rowPayload) error {
	resp, err := n.http.R().
		SetContext(ctx).
		SetBody(row).
		Post(n.url)
	if err != nil {
		return errs.NewUpstreamUnavailableError("google sheets", err)
	}
	if resp.IsError() {
		return errs.NewUpstreamRejectedError("google sheets", resp.StatusCode(), resp.Status())
	}
	return nil
}

// enqueue stores a failed row for the retry job, dropping the oldest row when
// the queue is full.
func (n *Notifier) enqueue(row rowPayload) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.pending) >= maxPending {
		n.pending = n.pending[1:]
	}
	n.pending = append(n.pending, row)
}

// PendingCount returns the number of rows awaiting redelivery.
func (n *Notifier) PendingCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.pending)
}

// Flush retries every queued row once. Rows that fail again go back to the
// queue in order. Returns the number of rows delivered.
func (n *Notifier) Flush(ctx context.Context) int {
	n.mu.Lock()
	batch := n.pending
	n.pending = nil
	n.mu.Unlock()

	delivered := 0
	for _, row := range batch {
		if err := n.post(ctx, row); err != nil {
			n.enqueue(row)
			n.logger.WarnContext(ctx, "notification redelivery failed",
				"order_id", row.OrderID, "error", err)
			continue
		}
		delivered++
	}

	return delivered
}
