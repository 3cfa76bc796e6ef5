package queries

import (
	"errors"
	"time"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrTrackOrderQueryIsNotConstructed is returned when a TrackOrderQuery was
// not created via NewTrackOrderQuery.
var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery builds the customer-facing tracking view for one order: the
// order itself plus a chronological timeline assembled from the payment and
// shipment activity logs.
type TrackOrderQuery struct {
	idOrGatewayID string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query for the given order id. Accepts
// the local id or the gateway order id.
func NewTrackOrderQuery(idOrGatewayID string) (TrackOrderQuery, error) {
	if idOrGatewayID == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("order id")
	}

	return TrackOrderQuery{
		idOrGatewayID: idOrGatewayID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// IDOrGatewayID returns the lookup key.
func (q TrackOrderQuery) IDOrGatewayID() string {
	return q.idOrGatewayID
}

// TimelineEvent is one step in the order's tracking timeline.
type TimelineEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
}

// TrackOrderResponse is the assembled tracking view.
type TrackOrderResponse struct {
	Order       OrderResponse   `json:"order"`
	Timeline    []TimelineEvent `json:"timeline"`
	AWBCode     string          `json:"awb_code,omitempty"`
	CourierName string          `json:"courier_name,omitempty"`
}
