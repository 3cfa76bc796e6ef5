package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// signatureHeader carries the gateway's HMAC over the raw request body.
const signatureHeader = "X-Razorpay-Signature"

// HandleGatewayWebhook handles POST /api/webhooks/razorpay - verifies the
// signature over the raw body, decodes the event and applies it to the order.
//
// Events for orders we do not know are acknowledged with 200 anyway: the
// gateway retries non-2xx responses, and retrying cannot make an unknown
// order appear. Only verification failures and internal errors are reported
// back.
func (s *Server) HandleGatewayWebhook(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	signature := ctx.Request().Header.Get(signatureHeader)
	if !s.gateway.VerifyWebhookSignature(body, signature) {
		return respondError(ctx, errs.NewSignatureInvalidError("webhook signature mismatch"))
	}

	event, err := s.gateway.DecodeWebhookEvent(body)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewApplyPaymentEventCommand(event)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	if err := s.applyPaymentEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return respondError(ctx, err)
		}
		ctx.Logger().Warnf("webhook for unknown order acknowledged: %v", err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetWebhookLogs handles GET /api/webhooks/logs - returns the most recent
// payment activity entries.
func (s *Server) GetWebhookLogs(ctx echo.Context) error {
	return s.activityLogResponse(ctx, activity.CategoryPayment, webhookLogLimit)
}

// WebhookTest handles GET /api/webhooks/test - reachability check used when
// registering the webhook URL with the gateway dashboard.
func (s *Server) WebhookTest(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"message":     "Webhook endpoint is working",
		"timestamp":   time.Now().Format(time.RFC3339),
		"environment": s.environment,
	})
}

// activityLogResponse renders the newest entries of one log category. A zero
// limit returns the full history.
func (s *Server) activityLogResponse(ctx echo.Context, category activity.Category, limit int) error {
	query, err := queries.NewGetActivityLogQuery(category, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.getActivityLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success": true,
		"count":   len(entries),
		"logs":    entries,
	})
}
