package http

import (
	"net/http"

	"orderdesk/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// TrackOrder handles GET /api/tracking/order/:orderId - returns the order's
// consolidated tracking timeline.
func (s *Server) TrackOrder(ctx echo.Context) error {
	query, err := queries.NewTrackOrderQuery(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	tracking, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"tracking": tracking,
	})
}

// TrackShipment handles GET /api/tracking/shipment/:awb - returns the stored
// shipment history for one AWB number.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewTrackShipmentQuery(ctx.Param("awb"))
	if err != nil {
		return respondError(ctx, err)
	}

	history, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"tracking": history,
	})
}

// GetSummary handles GET /api/tracking/summary - returns order counts,
// revenue and recent activity for the dashboard.
func (s *Server) GetSummary(ctx echo.Context) error {
	summary, err := s.getSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetSummaryQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success": true,
		"summary": summary,
	})
}
