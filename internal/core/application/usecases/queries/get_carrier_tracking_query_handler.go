package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/ports"
)

// GetCarrierTrackingQueryHandler fetches live tracking from the carrier and
// records the lookup in the shipment activity log.
type GetCarrierTrackingQueryHandler struct {
	carrier     ports.ShippingCarrier
	activityLog ports.ActivityLog
}

// NewGetCarrierTrackingQueryHandler creates a handler for live carrier
// tracking.
func NewGetCarrierTrackingQueryHandler(carrier ports.ShippingCarrier, activityLog ports.ActivityLog) GetCarrierTrackingQueryHandler {
	return GetCarrierTrackingQueryHandler{carrier: carrier, activityLog: activityLog}
}

// Handle queries the carrier for the AWB's current status. Successful lookups
// are recorded with the status the carrier reported; carrier errors propagate
// untouched.
func (h GetCarrierTrackingQueryHandler) Handle(ctx context.Context, query GetCarrierTrackingQuery) (CarrierTrackingResponse, error) {
	if err := query.Validate(); err != nil {
		return CarrierTrackingResponse{}, err
	}

	status, err := h.carrier.TrackShipment(ctx, query.AWBCode())
	if err != nil {
		return CarrierTrackingResponse{}, err
	}

	h.activityLog.Append(ctx, activity.CategoryShipment, activity.TypeTrackingRequest, map[string]any{
		"awb":    query.AWBCode(),
		"status": status.CurrentStatus,
	})

	return CarrierTrackingResponse{
		AWBCode:       status.AWBCode,
		CurrentStatus: status.CurrentStatus,
		Destination:   status.Destination,
		ETD:           status.ETD,
	}, nil
}
