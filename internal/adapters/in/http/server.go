package http

import (
	"net/http"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// webhookLogLimit caps the entries returned by the webhook log endpoint.
// The shipment log endpoint returns the full history.
const webhookLogLimit = 50

// Server coordinates between HTTP handlers and application use cases. It
// holds every command and query handler the API surface needs; routing and
// request decoding live here, business rules live in the use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	createShipmentHandler    commands.CreateShipmentCommandHandler
	applyPaymentEventHandler commands.ApplyPaymentEventCommandHandler

	// Webhook signature verification and decoding stay on the gateway port;
	// the raw request body must be verified before any command exists.
	gateway ports.PaymentGateway

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	listOrdersHandler          queries.ListOrdersQueryHandler
	trackOrderHandler          queries.TrackOrderQueryHandler
	trackShipmentHandler       queries.TrackShipmentQueryHandler
	getCarrierTrackingHandler  queries.GetCarrierTrackingQueryHandler
	checkServiceabilityHandler queries.CheckServiceabilityQueryHandler
	getActivityLogHandler      queries.GetActivityLogQueryHandler
	getSummaryHandler          queries.GetSummaryQueryHandler

	environment string
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The environment string is only surfaced on the webhook test
// endpoint.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	applyPaymentEventHandler commands.ApplyPaymentEventCommandHandler,
	gateway ports.PaymentGateway,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
	getCarrierTrackingHandler queries.GetCarrierTrackingQueryHandler,
	checkServiceabilityHandler queries.CheckServiceabilityQueryHandler,
	getActivityLogHandler queries.GetActivityLogQueryHandler,
	getSummaryHandler queries.GetSummaryQueryHandler,
	environment string,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		createShipmentHandler:      createShipmentHandler,
		applyPaymentEventHandler:   applyPaymentEventHandler,
		gateway:                    gateway,
		getOrderHandler:            getOrderHandler,
		listOrdersHandler:          listOrdersHandler,
		trackOrderHandler:          trackOrderHandler,
		trackShipmentHandler:       trackShipmentHandler,
		getCarrierTrackingHandler:  getCarrierTrackingHandler,
		checkServiceabilityHandler: checkServiceabilityHandler,
		getActivityLogHandler:      getActivityLogHandler,
		getSummaryHandler:          getSummaryHandler,
		environment:                environment,
	}
}

// RegisterRoutes wires every API route onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.POST("/orders/create", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)

	api.POST("/webhooks/razorpay", s.HandleGatewayWebhook)
	api.GET("/webhooks/logs", s.GetWebhookLogs)
	api.GET("/webhooks/test", s.WebhookTest)

	api.POST("/shipments/create", s.CreateShipment)
	api.GET("/shipments/track/:awb", s.TrackCarrierShipment)
	api.POST("/shipments/serviceability", s.CheckServiceability)
	api.GET("/shipments/logs", s.GetShipmentLogs)

	api.GET("/tracking/order/:orderId", s.TrackOrder)
	api.GET("/tracking/shipment/:awb", s.TrackShipment)
	api.GET("/tracking/summary", s.GetSummary)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
