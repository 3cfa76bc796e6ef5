package shiprocket

import (
	"context"
	"fmt"

	"orderdesk/internal/core/ports"

	"github.com/go-resty/resty/v2"
)

// trackingResponse is the carrier's AWB tracking payload, trimmed to the
// fields the system surfaces.
type trackingResponse struct {
	TrackingData struct {
		TrackStatus   int    `json:"track_status"`
		CurrentStatus string `json:"current_status"`
		ShipmentTrack []struct {
			AWBCode       string `json:"awb_code"`
			CurrentStatus string `json:"current_status"`
			Destination   string `json:"destination"`
			ETD           string `json:"etd"`
		} `json:"shipment_track"`
	} `json:"tracking_data"`
}

// TrackShipment returns the carrier's current view of an AWB number.
func (c *Client) TrackShipment(ctx context.Context, awbCode string) (ports.TrackingStatus, error) {
	var tracking trackingResponse
	resp, err := c.authorized(ctx, func(token string) (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetAuthToken(token).
			SetResult(&tracking).
			Get("/courier/track/awb/" + awbCode)
	})
	if err != nil {
		return ports.TrackingStatus{}, err
	}
	if resp.IsError() {
		return ports.TrackingStatus{}, upstreamError(resp, "tracking")
	}

	status := ports.TrackingStatus{
		AWBCode:       awbCode,
		CurrentStatus: tracking.TrackingData.CurrentStatus,
	}
	if len(tracking.TrackingData.ShipmentTrack) > 0 {
		track := tracking.TrackingData.ShipmentTrack[0]
		if track.CurrentStatus != "" {
			status.CurrentStatus = track.CurrentStatus
		}
		status.Destination = track.Destination
		status.ETD = track.ETD
	}

	return status, nil
}

// serviceabilityResponse is the carrier's courier list for a lane.
type serviceabilityResponse struct {
	Data struct {
		AvailableCourierCompanies []struct {
			CourierName           string  `json:"courier_name"`
			Rate                  float64 `json:"rate"`
			EstimatedDeliveryDays string  `json:"estimated_delivery_days"`
		} `json:"available_courier_companies"`
	} `json:"data"`
}

// CheckServiceability lists the couriers able to carry the given weight
// between two pincodes, prepaid only.
func (c *Client) CheckServiceability(ctx context.Context, pickupPincode, deliveryPincode string, weightKg float64) ([]ports.CourierOption, error) {
	var serviceability serviceabilityResponse
	resp, err := c.authorized(ctx, func(token string) (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetAuthToken(token).
			SetQueryParams(map[string]string{
				"pickup_postcode":   pickupPincode,
				"delivery_postcode": deliveryPincode,
				"weight":            fmt.Sprintf("%g", weightKg),
				"cod":               "0",
			}).
			SetResult(&serviceability).
			Get("/courier/serviceability/")
	})
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, upstreamError(resp, "serviceability check")
	}

	options := make([]ports.CourierOption, 0, len(serviceability.Data.AvailableCourierCompanies))
	for _, courier := range serviceability.Data.AvailableCourierCompanies {
		options = append(options, ports.CourierOption{
			Name:          courier.CourierName,
			Rate:          courier.Rate,
			EstimatedDays: courier.EstimatedDeliveryDays,
		})
	}

	return options, nil
}
