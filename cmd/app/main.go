package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderdesk/cmd"
	httpin "orderdesk/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	// A missing .env file is fine in deployed environments where the
	// variables come from the process environment.
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file loaded, using process environment")
	}

	return cmd.Config{
		HTTPPort:    envOrDefault("HTTP_PORT", "3000"),
		Environment: envOrDefault("APP_ENV", "development"),
		DataDir:     envOrDefault("DATA_DIR", "data"),

		RazorpayAPIURL:        envOrDefault("RAZORPAY_API_URL", "https://api.razorpay.com/v1"),
		RazorpayKeyID:         os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:     os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayWebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),

		ShiprocketAPIURL:        envOrDefault("SHIPROCKET_API_URL", "https://apiv2.shiprocket.in/v1/external"),
		ShiprocketEmail:         os.Getenv("SHIPROCKET_EMAIL"),
		ShiprocketPassword:      os.Getenv("SHIPROCKET_PASSWORD"),
		ShiprocketPickupPincode: envOrDefault("SHIPROCKET_PICKUP_PINCODE", "110001"),

		GoogleSheetsURL: os.Getenv("GOOGLE_SHEETS_URL"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = httpin.NewRequestValidator()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	app.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Web server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
