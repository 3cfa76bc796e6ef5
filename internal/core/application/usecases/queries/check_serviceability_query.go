package queries

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrCheckServiceabilityQueryIsNotConstructed is returned when a
// CheckServiceabilityQuery was not created via NewCheckServiceabilityQuery.
var ErrCheckServiceabilityQueryIsNotConstructed = errors.New(
	"CheckServiceabilityQuery must be created via NewCheckServiceabilityQuery constructor",
)

// DefaultShipmentWeightKg is the declared weight used when the caller does
// not provide one. It matches the printed book package.
const DefaultShipmentWeightKg = 0.5

// CheckServiceabilityQuery asks the carrier which couriers can deliver to a
// pincode. An empty pickup pincode falls back to the configured warehouse
// pincode; a zero weight falls back to DefaultShipmentWeightKg.
type CheckServiceabilityQuery struct {
	pickupPincode   string
	deliveryPincode string
	weightKg        float64

	guard guard.ConstructorGuard
}

// NewCheckServiceabilityQuery creates a serviceability query. The delivery
// pincode is required.
func NewCheckServiceabilityQuery(pickupPincode, deliveryPincode string, weightKg float64) (CheckServiceabilityQuery, error) {
	if deliveryPincode == "" {
		return CheckServiceabilityQuery{}, errs.NewValueIsRequiredError("delivery_pincode")
	}
	if weightKg < 0 {
		return CheckServiceabilityQuery{}, errs.NewValueIsOutOfRangeError("weight", weightKg, 0, nil)
	}
	if weightKg == 0 {
		weightKg = DefaultShipmentWeightKg
	}

	return CheckServiceabilityQuery{
		pickupPincode:   pickupPincode,
		deliveryPincode: deliveryPincode,
		weightKg:        weightKg,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckServiceabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckServiceabilityQueryIsNotConstructed)
}

// PickupPincode returns the pickup pincode, possibly empty.
func (q CheckServiceabilityQuery) PickupPincode() string {
	return q.pickupPincode
}

// DeliveryPincode returns the destination pincode.
func (q CheckServiceabilityQuery) DeliveryPincode() string {
	return q.deliveryPincode
}

// WeightKg returns the declared shipment weight.
func (q CheckServiceabilityQuery) WeightKg() float64 {
	return q.weightKg
}

// CourierOptionResponse is one courier able to serve the queried lane.
type CourierOptionResponse struct {
	Name          string  `json:"courier_name"`
	Rate          float64 `json:"rate"`
	EstimatedDays string  `json:"estimated_delivery_days,omitempty"`
}

// ServiceabilityResponse lists the couriers available for a lane.
type ServiceabilityResponse struct {
	PickupPincode   string                  `json:"pickup_pincode"`
	DeliveryPincode string                  `json:"delivery_pincode"`
	Couriers        []CourierOptionResponse `json:"available_couriers"`
}
