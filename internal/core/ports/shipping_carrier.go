package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// ShipmentRequest is the input for creating a carrier shipment for a paid
// physical order.
type ShipmentRequest struct {
	OrderID      string
	CustomerName string
	Email        string
	Phone        string
	Address      kernel.PostalAddress
	PackageType  order.PackageType
	AmountMinor  int64
}

// Shipment is the carrier's record of a created shipment.
type Shipment struct {
	CarrierOrderID string
	ShipmentID     string
	AWBCode        string
	CourierName    string
}

// TrackingStatus is the carrier's current view of a shipment.
type TrackingStatus struct {
	AWBCode       string
	CurrentStatus string
	Destination   string
	ETD           string
}

// CourierOption is one courier available for a lane, as returned by the
// serviceability check.
type CourierOption struct {
	Name          string
	Rate          float64
	EstimatedDays string
}

// ShippingCarrier is the outbound contract with the shipping provider.
//
// Implementations hold a single shared bearer session: they authenticate
// lazily, re-authenticate once when the token is missing or expired, and
// surface the second failure to the caller. Fails with
// errs.ErrUpstreamUnavailable and errs.ErrUpstreamRejected following the same
// convention as PaymentGateway.
type ShippingCarrier interface {
	// CreateShipment registers a shipment with the carrier and returns its
	// identifiers. Never called for digital packages.
	CreateShipment(ctx context.Context, req ShipmentRequest) (Shipment, error)

	// TrackShipment returns the carrier's tracking status for an AWB number.
	TrackShipment(ctx context.Context, awbCode string) (TrackingStatus, error)

	// CheckServiceability lists the couriers able to carry the given weight
	// between two pincodes.
	CheckServiceability(ctx context.Context, pickupPincode, deliveryPincode string, weightKg float64) ([]CourierOption, error)
}
