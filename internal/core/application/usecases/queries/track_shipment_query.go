package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrTrackShipmentQueryIsNotConstructed is returned when a TrackShipmentQuery
// was not created via NewTrackShipmentQuery.
var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery retrieves the stored shipment history for one AWB
// number. This reads the local activity log only; live carrier tracking goes
// through GetCarrierTrackingQuery.
type TrackShipmentQuery struct {
	awbCode string

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a query for a shipment's stored history.
func NewTrackShipmentQuery(awbCode string) (TrackShipmentQuery, error) {
	if awbCode == "" {
		return TrackShipmentQuery{}, errs.NewValueIsRequiredError("awb code")
	}

	return TrackShipmentQuery{
		awbCode: awbCode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// AWBCode returns the tracked AWB number.
func (q TrackShipmentQuery) AWBCode() string {
	return q.awbCode
}

// TrackShipmentResponse is the stored history of one shipment.
type TrackShipmentResponse struct {
	AWBCode string           `json:"awb"`
	Logs    []activity.Entry `json:"logs"`
}
