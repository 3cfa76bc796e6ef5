package commands

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// CreateShipmentResult is the outcome of a shipment command. Digital is true
// when the package needed no shipping; Shipment is populated otherwise.
type CreateShipmentResult struct {
	Digital  bool
	Shipment ports.Shipment
}

// CreateShipmentCommandHandler handles shipment creation against the carrier
// and records the outcome in the shipment activity log. It also serves as the
// automatic post-capture shipment trigger.
type CreateShipmentCommandHandler struct {
	carrier     ports.ShippingCarrier
	activityLog ports.ActivityLog
	logger      *slog.Logger
}

// NewCreateShipmentCommandHandler creates a handler for shipment operations.
func NewCreateShipmentCommandHandler(
	carrier ports.ShippingCarrier,
	activityLog ports.ActivityLog,
	logger *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		carrier:     carrier,
		activityLog: activityLog,
		logger:      logger.With("component", "create_shipment_handler"),
	}
}

// Handle processes the shipment command. Digital packages are recorded as a
// digital delivery and returned without touching the carrier. For physical
// packages the carrier call's outcome, success or failure, is appended to the
// shipment activity log; the carrier error propagates to the caller.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (CreateShipmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateShipmentResult{}, err
	}

	if !cmd.PackageType().Physical() {
		h.activityLog.Append(ctx, activity.CategoryShipment, activity.TypeDigitalDelivery, map[string]any{
			"order_id":      cmd.OrderID(),
			"customer_name": cmd.CustomerName(),
			"package_type":  cmd.PackageType().String(),
			"message":       "PDF report - no physical shipping required",
		})
		return CreateShipmentResult{Digital: true}, nil
	}

	shipment, err := h.carrier.CreateShipment(ctx, ports.ShipmentRequest{
		OrderID:      cmd.OrderID(),
		CustomerName: cmd.CustomerName(),
		Email:        cmd.Email(),
		Phone:        cmd.Phone(),
		Address:      cmd.Address(),
		PackageType:  cmd.PackageType(),
		AmountMinor:  cmd.AmountMinor(),
	})
	if err != nil {
		h.activityLog.Append(ctx, activity.CategoryShipment, activity.TypeShipmentError, map[string]any{
			"order_id": cmd.OrderID(),
			"error":    err.Error(),
		})
		return CreateShipmentResult{}, err
	}

	h.activityLog.Append(ctx, activity.CategoryShipment, activity.TypeShipmentCreated, map[string]any{
		"order_id":         cmd.OrderID(),
		"carrier_order_id": shipment.CarrierOrderID,
		"shipment_id":      shipment.ShipmentID,
		"awb_code":         shipment.AWBCode,
		"courier_name":     shipment.CourierName,
		"customer_name":    cmd.CustomerName(),
	})

	return CreateShipmentResult{Shipment: shipment}, nil
}

// TriggerForOrder creates a shipment for a freshly paid physical order. It is
// best-effort by contract: a shipment failure never rolls back the payment
// state, so the outcome is logged and recorded but no error is returned.
func (h *CreateShipmentCommandHandler) TriggerForOrder(ctx context.Context, aggregate *order.Order) {
	cmd, err := CommandForOrder(aggregate)
	if err != nil {
		h.logger.ErrorContext(ctx, "automatic shipment trigger could not build command",
			"order_id", aggregate.GatewayOrderID(), "error", err)
		return
	}

	result, err := h.Handle(ctx, cmd)
	if err != nil {
		h.activityLog.Append(ctx, activity.CategoryShipment, activity.TypeShipmentAutoErr, map[string]any{
			"order_id": aggregate.GatewayOrderID(),
			"error":    err.Error(),
		})
		h.logger.ErrorContext(ctx, "automatic shipment creation failed",
			"order_id", aggregate.GatewayOrderID(), "error", err)
		return
	}

	h.activityLog.Append(ctx, activity.CategoryShipment, activity.TypeShipmentAuto, map[string]any{
		"order_id":    aggregate.GatewayOrderID(),
		"awb_code":    result.Shipment.AWBCode,
		"shipment_id": result.Shipment.ShipmentID,
	})
}
