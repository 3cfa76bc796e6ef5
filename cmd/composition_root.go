package cmd

import (
	"fmt"
	"log/slog"

	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/jsonstore"
	"orderdesk/internal/adapters/out/razorpay"
	"orderdesk/internal/adapters/out/sheets"
	"orderdesk/internal/adapters/out/shiprocket"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/jobs"
)

// CompositionRoot constructs and holds every adapter, and builds the command
// and query handlers on top of them. All wiring decisions live here.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	orders      *jsonstore.OrderRepository
	activityLog *jsonstore.ActivityLog
	gateway     *razorpay.Client
	carrier     *shiprocket.Client
	notifier    *sheets.Notifier
}

// NewCompositionRoot builds all adapters from the configuration. Fails when a
// required setting is missing or the data directory cannot be prepared.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	orders, err := jsonstore.NewOrderRepository(config.DataDir)
	if err != nil {
		return nil, fmt.Errorf("order repository: %w", err)
	}

	activityLog, err := jsonstore.NewActivityLog(config.DataDir, jsonstore.DefaultMaxEntries, logger)
	if err != nil {
		return nil, fmt.Errorf("activity log: %w", err)
	}

	gateway, err := razorpay.NewClient(config.RazorpayAPIURL, config.RazorpayKeyID,
		config.RazorpayKeySecret, config.RazorpayWebhookSecret)
	if err != nil {
		return nil, fmt.Errorf("payment gateway: %w", err)
	}

	carrier, err := shiprocket.NewClient(config.ShiprocketAPIURL, config.ShiprocketEmail,
		config.ShiprocketPassword)
	if err != nil {
		return nil, fmt.Errorf("shipping carrier: %w", err)
	}

	notifier, err := sheets.NewNotifier(config.GoogleSheetsURL, logger)
	if err != nil {
		return nil, fmt.Errorf("sheets notifier: %w", err)
	}

	return &CompositionRoot{
		config:      config,
		logger:      logger,
		orders:      orders,
		activityLog: activityLog,
		gateway:     gateway,
		carrier:     carrier,
		notifier:    notifier,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.gateway, c.orders, c.activityLog, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.carrier, c.activityLog, c.logger)
}

func (c *CompositionRoot) CreateApplyPaymentEventCommandHandler() commands.ApplyPaymentEventCommandHandler {
	shipmentHandler := c.CreateCreateShipmentCommandHandler()
	return commands.NewApplyPaymentEventCommandHandler(c.orders, c.activityLog, c.notifier,
		&shipmentHandler, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.orders, c.activityLog)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.activityLog)
}

func (c *CompositionRoot) CreateGetCarrierTrackingQueryHandler() queries.GetCarrierTrackingQueryHandler {
	return queries.NewGetCarrierTrackingQueryHandler(c.carrier, c.activityLog)
}

func (c *CompositionRoot) CreateCheckServiceabilityQueryHandler() queries.CheckServiceabilityQueryHandler {
	return queries.NewCheckServiceabilityQueryHandler(c.carrier, c.config.ShiprocketPickupPincode)
}

func (c *CompositionRoot) CreateGetActivityLogQueryHandler() queries.GetActivityLogQueryHandler {
	return queries.NewGetActivityLogQueryHandler(c.activityLog)
}

func (c *CompositionRoot) CreateGetSummaryQueryHandler() queries.GetSummaryQueryHandler {
	return queries.NewGetSummaryQueryHandler(c.orders, c.activityLog)
}

// CreateHTTPServer assembles the HTTP server over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCreateShipmentCommandHandler(),
		c.CreateApplyPaymentEventCommandHandler(),
		c.gateway,
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.CreateTrackShipmentQueryHandler(),
		c.CreateGetCarrierTrackingQueryHandler(),
		c.CreateCheckServiceabilityQueryHandler(),
		c.CreateGetActivityLogQueryHandler(),
		c.CreateGetSummaryQueryHandler(),
		c.config.Environment,
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.notifier, c.logger)
}
