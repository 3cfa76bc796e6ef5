package http

import (
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// shipmentCreatedResponse reports the carrier identifiers of a new shipment.
type shipmentCreatedResponse struct {
	Success  bool         `json:"success"`
	Message  string       `json:"message"`
	Shipment shipmentData `json:"shipment"`
}

type shipmentData struct {
	OrderID     string `json:"order_id"`
	ShipmentID  string `json:"shipment_id"`
	AWBCode     string `json:"awb_code"`
	CourierName string `json:"courier_name"`
}

// digitalDeliveryResponse is returned when the package needs no shipping.
type digitalDeliveryResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	OrderID      string `json:"order_id"`
	DeliveryType string `json:"delivery_type"`
}

// CreateShipment handles POST /api/shipments/create - books a carrier
// shipment for a physical package, or records the digital delivery for a
// package that needs none.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}
	if err := ctx.Validate(req); err != nil {
		return respondError(ctx, err)
	}

	packageType, err := order.ParsePackageType(req.PackageType)
	if err != nil {
		return respondError(ctx, err)
	}

	address, err := postalAddressFrom(packageType, req.Address, req.City, req.State, req.Pincode)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(req.OrderID, req.CustomerName,
		req.CustomerEmail, req.CustomerPhone, address, packageType, req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	if result.Digital {
		return ctx.JSON(http.StatusOK, digitalDeliveryResponse{
			Success:      true,
			Message:      "Digital delivery - no shipping required",
			OrderID:      req.OrderID,
			DeliveryType: "digital",
		})
	}

	return ctx.JSON(http.StatusOK, shipmentCreatedResponse{
		Success: true,
		Message: "Shipment created successfully",
		Shipment: shipmentData{
			OrderID:     result.Shipment.CarrierOrderID,
			ShipmentID:  result.Shipment.ShipmentID,
			AWBCode:     result.Shipment.AWBCode,
			CourierName: result.Shipment.CourierName,
		},
	})
}

// TrackCarrierShipment handles GET /api/shipments/track/:awb - fetches live
// tracking from the carrier and records the lookup.
func (s *Server) TrackCarrierShipment(ctx echo.Context) error {
	query, err := queries.NewGetCarrierTrackingQuery(ctx.Param("awb"))
	if err != nil {
		return respondError(ctx, err)
	}

	tracking, err := s.getCarrierTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success":       true,
		"tracking_data": tracking,
	})
}

// CheckServiceability handles POST /api/shipments/serviceability - lists the
// couriers able to deliver between two pincodes.
func (s *Server) CheckServiceability(ctx echo.Context) error {
	var req ServiceabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}
	if err := ctx.Validate(req); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewCheckServiceabilityQuery(req.PickupPincode, req.DeliveryPincode, req.WeightKg)
	if err != nil {
		return respondError(ctx, err)
	}

	serviceability, err := s.checkServiceabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success":        true,
		"serviceability": serviceability,
	})
}

// GetShipmentLogs handles GET /api/shipments/logs - returns the full shipment
// activity history.
func (s *Server) GetShipmentLogs(ctx echo.Context) error {
	return s.activityLogResponse(ctx, activity.CategoryShipment, 0)
}
