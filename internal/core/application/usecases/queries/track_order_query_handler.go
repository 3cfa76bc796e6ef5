package queries

import (
	"context"
	"fmt"
	"sort"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/ports"
)

// TrackOrderQueryHandler assembles an order's tracking timeline.
//
// The first timeline event is synthesized from the order's creation timestamp;
// the rest are projected from the payment and shipment activity logs. Entries
// with event types the timeline does not render are skipped, so unknown log
// types never break tracking.
type TrackOrderQueryHandler struct {
	orders      ports.OrderRepository
	activityLog ports.ActivityLog
}

// NewTrackOrderQueryHandler creates a handler for order tracking.
func NewTrackOrderQueryHandler(orders ports.OrderRepository, activityLog ports.ActivityLog) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{orders: orders, activityLog: activityLog}
}

// Handle resolves the order, projects its activity entries into timeline
// events and sorts them chronologically. Fails with errs.ErrObjectNotFound
// when no order matches.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderResponse{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.IDOrGatewayID())
	if err != nil {
		return TrackOrderResponse{}, err
	}

	// Log entries reference orders by either identifier.
	matchesOrder := func(entry activity.Entry) bool {
		orderID := entry.OrderID()
		return orderID == aggregate.GatewayOrderID() || orderID == aggregate.ID().String()
	}

	response := TrackOrderResponse{
		Order: orderResponseFrom(aggregate),
		Timeline: []TimelineEvent{{
			Timestamp:   aggregate.CreatedAt(),
			Status:      "Order Created",
			Description: "Order has been created and is awaiting payment",
			Type:        "order",
		}},
	}

	paymentEntries, err := h.activityLog.Query(ctx, activity.CategoryPayment, matchesOrder)
	if err != nil {
		return TrackOrderResponse{}, err
	}
	for _, entry := range paymentEntries {
		if event, ok := paymentTimelineEvent(entry); ok {
			response.Timeline = append(response.Timeline, event)
		}
	}

	shipmentEntries, err := h.activityLog.Query(ctx, activity.CategoryShipment, matchesOrder)
	if err != nil {
		return TrackOrderResponse{}, err
	}
	for _, entry := range shipmentEntries {
		event, ok := shipmentTimelineEvent(entry)
		if !ok {
			continue
		}
		if entry.Type == activity.TypeShipmentCreated {
			response.AWBCode = entry.StringField("awb_code")
			response.CourierName = entry.StringField("courier_name")
		}
		response.Timeline = append(response.Timeline, event)
	}

	sort.SliceStable(response.Timeline, func(i, j int) bool {
		return response.Timeline[i].Timestamp.Before(response.Timeline[j].Timestamp)
	})

	return response, nil
}

func paymentTimelineEvent(entry activity.Entry) (TimelineEvent, bool) {
	event := TimelineEvent{Timestamp: entry.Timestamp, Type: "payment"}
	switch entry.Type {
	case activity.TypePaymentCaptured:
		event.Status = "Payment Successful"
		event.Description = fmt.Sprintf("Payment of %v has been captured successfully", entry.Data["amount"])
	case activity.TypePaymentFailed:
		reason := entry.StringField("error_description")
		if reason == "" {
			reason = "Unknown error"
		}
		event.Status = "Payment Failed"
		event.Description = "Payment failed: " + reason
	case activity.TypeOrderCompleted:
		event.Status = "Order Completed"
		event.Description = "Order has been completed successfully"
	default:
		return TimelineEvent{}, false
	}
	return event, true
}

func shipmentTimelineEvent(entry activity.Entry) (TimelineEvent, bool) {
	event := TimelineEvent{Timestamp: entry.Timestamp, Type: "shipment"}
	switch entry.Type {
	case activity.TypeDigitalDelivery:
		event.Status = "Digital Delivery"
		event.Description = "PDF report - no physical shipping required"
	case activity.TypeShipmentCreated:
		awb := entry.StringField("awb_code")
		if awb == "" {
			awb = "N/A"
		}
		event.Status = "Shipment Created"
		event.Description = "Shipment created with AWB: " + awb
	case activity.TypeShipmentAuto:
		event.Status = "Auto Shipment"
		event.Description = "Shipment created automatically after payment"
	case activity.TypeShipmentError:
		event.Status = "Shipment Error"
		event.Description = "Failed to create shipment - manual intervention required"
	default:
		return TimelineEvent{}, false
	}
	return event, true
}
