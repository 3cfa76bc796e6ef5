package commands

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// ApplyPaymentEventCommandHandler advances order lifecycles from gateway
// webhook events.
//
// Every handled event is applied idempotently: the aggregate reports whether
// the transition actually changed anything, and side effects (activity log
// entries, shipment creation, notifications) run only on a fresh transition.
// A redelivered webhook therefore acknowledges cleanly without duplicating
// shipments or log entries.
type ApplyPaymentEventCommandHandler struct {
	orders          ports.OrderRepository
	activityLog     ports.ActivityLog
	notifier        ports.Notifier
	shipmentHandler *CreateShipmentCommandHandler
	logger          *slog.Logger
}

// NewApplyPaymentEventCommandHandler creates a handler for gateway webhook
// events.
func NewApplyPaymentEventCommandHandler(
	orders ports.OrderRepository,
	activityLog ports.ActivityLog,
	notifier ports.Notifier,
	shipmentHandler *CreateShipmentCommandHandler,
	logger *slog.Logger,
) ApplyPaymentEventCommandHandler {
	return ApplyPaymentEventCommandHandler{
		orders:          orders,
		activityLog:     activityLog,
		notifier:        notifier,
		shipmentHandler: shipmentHandler,
		logger:          logger.With("component", "apply_payment_event_handler"),
	}
}

// Handle dispatches the event to the matching lifecycle transition. Unknown
// event kinds are acknowledged without touching anything. An event for an
// order this system never created propagates errs.ErrObjectNotFound.
func (h *ApplyPaymentEventCommandHandler) Handle(ctx context.Context, cmd ApplyPaymentEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event := cmd.Event()
	switch event.Kind {
	case ports.PaymentEventCaptured:
		return h.applyCaptured(ctx, event)
	case ports.PaymentEventFailed:
		return h.applyFailed(ctx, event)
	case ports.PaymentEventOrderPaid:
		return h.applyOrderPaid(ctx, event)
	default:
		h.logger.InfoContext(ctx, "ignoring unhandled gateway event", "event", event.RawEventName)
		return nil
	}
}

func (h *ApplyPaymentEventCommandHandler) applyCaptured(ctx context.Context, event ports.PaymentEvent) error {
	changed := false
	updated, err := h.orders.Update(ctx, event.GatewayOrderID, func(aggregate *order.Order) error {
		changed = aggregate.Capture(event.PaymentID, time.Now())
		return nil
	})
	if err != nil {
		return err
	}

	if !changed {
		h.logger.InfoContext(ctx, "payment capture replayed, no transition",
			"order_id", event.GatewayOrderID, "payment_id", event.PaymentID)
		return nil
	}

	h.activityLog.Append(ctx, activity.CategoryPayment, activity.TypePaymentCaptured, map[string]any{
		"payment_id":       event.PaymentID,
		"order_id":         event.GatewayOrderID,
		"amount":           event.AmountMinor,
		"customer_email":   event.Email,
		"customer_contact": event.Contact,
	})

	if err := h.notifier.NotifyPaymentConfirmed(ctx, updated); err != nil {
		h.logger.WarnContext(ctx, "payment confirmation notification failed",
			"order_id", event.GatewayOrderID, "error", err)
	}

	if updated.PackageType().Physical() {
		h.shipmentHandler.TriggerForOrder(ctx, updated)
	}

	return nil
}

func (h *ApplyPaymentEventCommandHandler) applyFailed(ctx context.Context, event ports.PaymentEvent) error {
	changed := false
	_, err := h.orders.Update(ctx, event.GatewayOrderID, func(aggregate *order.Order) error {
		changed = aggregate.MarkFailed(event.ErrorReason, time.Now())
		return nil
	})
	if err != nil {
		return err
	}

	if !changed {
		h.logger.InfoContext(ctx, "payment failure replayed, no transition",
			"order_id", event.GatewayOrderID)
		return nil
	}

	h.activityLog.Append(ctx, activity.CategoryPayment, activity.TypePaymentFailed, map[string]any{
		"payment_id":        event.PaymentID,
		"order_id":          event.GatewayOrderID,
		"error_code":        event.ErrorCode,
		"error_description": event.ErrorReason,
	})

	return nil
}

func (h *ApplyPaymentEventCommandHandler) applyOrderPaid(ctx context.Context, event ports.PaymentEvent) error {
	changed := false
	_, err := h.orders.Update(ctx, event.GatewayOrderID, func(aggregate *order.Order) error {
		changed = aggregate.Complete(time.Now())
		return nil
	})
	if err != nil {
		return err
	}

	if !changed {
		h.logger.InfoContext(ctx, "order paid event replayed, no transition",
			"order_id", event.GatewayOrderID)
		return nil
	}

	h.activityLog.Append(ctx, activity.CategoryPayment, activity.TypeOrderCompleted, map[string]any{
		"order_id": event.GatewayOrderID,
		"amount":   event.AmountMinor,
	})

	return nil
}
