package queries

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrGetCarrierTrackingQueryIsNotConstructed is returned when a
// GetCarrierTrackingQuery was not created via NewGetCarrierTrackingQuery.
var ErrGetCarrierTrackingQueryIsNotConstructed = errors.New(
	"GetCarrierTrackingQuery must be created via NewGetCarrierTrackingQuery constructor",
)

// GetCarrierTrackingQuery fetches the live tracking status for an AWB number
// from the carrier.
type GetCarrierTrackingQuery struct {
	awbCode string

	guard guard.ConstructorGuard
}

// NewGetCarrierTrackingQuery creates a live tracking query.
func NewGetCarrierTrackingQuery(awbCode string) (GetCarrierTrackingQuery, error) {
	if awbCode == "" {
		return GetCarrierTrackingQuery{}, errs.NewValueIsRequiredError("awb code")
	}

	return GetCarrierTrackingQuery{
		awbCode: awbCode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierTrackingQueryIsNotConstructed)
}

// AWBCode returns the tracked AWB number.
func (q GetCarrierTrackingQuery) AWBCode() string {
	return q.awbCode
}

// CarrierTrackingResponse is the carrier's live view of a shipment.
type CarrierTrackingResponse struct {
	AWBCode       string `json:"awb_code"`
	CurrentStatus string `json:"current_status"`
	Destination   string `json:"destination,omitempty"`
	ETD           string `json:"etd,omitempty"`
}
