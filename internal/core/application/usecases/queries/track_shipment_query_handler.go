package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// TrackShipmentQueryHandler serves a shipment's stored history from the
// shipment activity log.
type TrackShipmentQueryHandler struct {
	activityLog ports.ActivityLog
}

// NewTrackShipmentQueryHandler creates a handler for shipment history.
func NewTrackShipmentQueryHandler(activityLog ports.ActivityLog) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{activityLog: activityLog}
}

// Handle returns every shipment log entry carrying the queried AWB number.
// Fails with errs.ErrObjectNotFound when no entry mentions the AWB, which
// means this system never created that shipment.
func (h TrackShipmentQueryHandler) Handle(ctx context.Context, query TrackShipmentQuery) (TrackShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentResponse{}, err
	}

	entries, err := h.activityLog.Query(ctx, activity.CategoryShipment, func(entry activity.Entry) bool {
		return entry.StringField("awb_code") == query.AWBCode()
	})
	if err != nil {
		return TrackShipmentResponse{}, err
	}
	if len(entries) == 0 {
		return TrackShipmentResponse{}, errs.NewObjectNotFoundError("awb", query.AWBCode())
	}

	return TrackShipmentResponse{
		AWBCode: query.AWBCode(),
		Logs:    entries,
	}, nil
}
