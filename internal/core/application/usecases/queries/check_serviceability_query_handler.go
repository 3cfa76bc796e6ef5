package queries

import (
	"context"

	"orderdesk/internal/core/ports"
)

// CheckServiceabilityQueryHandler asks the carrier which couriers serve a
// lane. The handler carries the warehouse pickup pincode used when the query
// does not name one.
type CheckServiceabilityQueryHandler struct {
	carrier              ports.ShippingCarrier
	defaultPickupPincode string
}

// NewCheckServiceabilityQueryHandler creates a handler for serviceability
// checks.
func NewCheckServiceabilityQueryHandler(carrier ports.ShippingCarrier, defaultPickupPincode string) CheckServiceabilityQueryHandler {
	return CheckServiceabilityQueryHandler{
		carrier:              carrier,
		defaultPickupPincode: defaultPickupPincode,
	}
}

// Handle resolves the pickup pincode and queries the carrier. Carrier errors
// propagate untouched.
func (h CheckServiceabilityQueryHandler) Handle(ctx context.Context, query CheckServiceabilityQuery) (ServiceabilityResponse, error) {
	if err := query.Validate(); err != nil {
		return ServiceabilityResponse{}, err
	}

	pickup := query.PickupPincode()
	if pickup == "" {
		pickup = h.defaultPickupPincode
	}

	options, err := h.carrier.CheckServiceability(ctx, pickup, query.DeliveryPincode(), query.WeightKg())
	if err != nil {
		return ServiceabilityResponse{}, err
	}

	couriers := make([]CourierOptionResponse, 0, len(options))
	for _, option := range options {
		couriers = append(couriers, CourierOptionResponse{
			Name:          option.Name,
			Rate:          option.Rate,
			EstimatedDays: option.EstimatedDays,
		})
	}

	return ServiceabilityResponse{
		PickupPincode:   pickup,
		DeliveryPincode: query.DeliveryPincode(),
		Couriers:        couriers,
	}, nil
}
