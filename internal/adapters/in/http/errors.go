package http

import (
	"errors"
	"net/http"

	"orderdesk/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// respondError maps domain and upstream errors to HTTP status codes and
// renders the error body. Binding and validation problems are the caller's
// fault; missing objects are 404; everything coming back broken from a
// payment or shipping provider is a bad gateway.
func respondError(ctx echo.Context, err error) error {
	var validationErrors validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrors),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrSignatureInvalid):
		return errorJSON(ctx, http.StatusBadRequest, err)
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrDuplicateKey):
		return errorJSON(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrUpstreamUnavailable),
		errors.Is(err, errs.ErrUpstreamRejected):
		return errorJSON(ctx, http.StatusBadGateway, err)
	default:
		return errorJSON(ctx, http.StatusInternalServerError, err)
	}
}

func errorJSON(ctx echo.Context, status int, err error) error {
	return ctx.JSON(status, map[string]any{
		"success": false,
		"error":   err.Error(),
	})
}
