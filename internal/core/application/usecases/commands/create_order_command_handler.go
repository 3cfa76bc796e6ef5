package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// CreateOrderResult is what the storefront needs back: the gateway identifiers
// to open the checkout widget with, plus the local record id.
type CreateOrderResult struct {
	LocalOrderID   string
	GatewayOrderID string
	AmountMinor    int64
	Currency       string
	Receipt        string
}

// CreateOrderCommandHandler handles order creation: it creates the remote
// payment order, persists the local order record in "created" status, records
// the activity entry and fires the best-effort spreadsheet notification.
type CreateOrderCommandHandler struct {
	gateway     ports.PaymentGateway
	orders      ports.OrderRepository
	activityLog ports.ActivityLog
	notifier    ports.Notifier
	logger      *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	gateway ports.PaymentGateway,
	orders ports.OrderRepository,
	activityLog ports.ActivityLog,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		gateway:     gateway,
		orders:      orders,
		activityLog: activityLog,
		notifier:    notifier,
		logger:      logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
//
// The gateway call happens first: only a successful remote order creation
// produces a local record, which keeps the invariant that every stored order
// carries a gateway order id. A gateway failure is recorded in the order
// activity log and returned to the caller; a store failure after the gateway
// call is order-critical and propagates as well. The spreadsheet notification
// is best-effort and never fails the request.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	receipt := newReceipt()
	customer := cmd.Customer()

	remote, err := h.gateway.CreateOrder(ctx, cmd.Price(), receipt, gatewayNotes(cmd))
	if err != nil {
		h.activityLog.Append(ctx, activity.CategoryOrder, activity.TypeOrderError, map[string]any{
			"error":    err.Error(),
			"amount":   cmd.Price().AmountMinor(),
			"customer": customer.Name(),
		})
		return CreateOrderResult{}, err
	}

	now := time.Now()
	aggregate, err := order.NewOrder(kernel.NewUUID(), remote.GatewayOrderID, receipt,
		cmd.Price(), cmd.PackageType(), customer, now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = h.orders.Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	h.activityLog.Append(ctx, activity.CategoryOrder, activity.TypeOrderCreated, map[string]any{
		"order_id":       aggregate.GatewayOrderID(),
		"local_order_id": aggregate.ID().String(),
		"amount":         aggregate.Price().AmountMinor(),
		"customer":       customer.Name(),
	})

	if err = h.notifier.NotifyOrderCreated(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "order-created notification failed",
			"order_id", aggregate.GatewayOrderID(), "error", err)
	}

	return CreateOrderResult{
		LocalOrderID:   aggregate.ID().String(),
		GatewayOrderID: remote.GatewayOrderID,
		AmountMinor:    remote.AmountMinor,
		Currency:       remote.Currency,
		Receipt:        remote.Receipt,
	}, nil
}

// newReceipt generates a merchant receipt id unique enough for the gateway's
// per-merchant uniqueness requirement.
func newReceipt() string {
	return fmt.Sprintf("ORD_%d_%s", time.Now().UnixMilli(), kernel.NewUUID().String()[:8])
}

// gatewayNotes builds the free-form notes attached to the payment intent so
// the order context is visible in the provider dashboard.
func gatewayNotes(cmd CreateOrderCommand) map[string]string {
	customer := cmd.Customer()
	notes := map[string]string{
		"customer_name":  customer.Name(),
		"customer_email": customer.Email(),
		"package_type":   cmd.PackageType().String(),
		"birth_date":     customer.Birth().Date,
		"birth_time":     customer.Birth().Time,
		"birth_place":    customer.Birth().Place,
		"whatsapp":       customer.Whatsapp(),
	}
	if addr := customer.Address(); !addr.IsZero() {
		notes["address"] = fmt.Sprintf("%s, %s, %s, %s",
			addr.Street(), addr.City(), addr.State(), addr.Pincode())
	}
	return notes
}
