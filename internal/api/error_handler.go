package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
)

// StatusValidationFailed is the nonstandard 449 this API uses for validation
// and business-rule rejections. Existing clients depend on it verbatim.
const StatusValidationFailed = 449

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes and
//     the exact response bodies existing clients expect.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, map[string]string{"error": fmt.Sprintf("%v", he.Message)}
	}

	// Validation and business-rule rejections carry their client message.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return StatusValidationFailed, map[string]string{"error": ve.Message}
	}

	// Known domain errors → deterministic status and body. The user routes
	// historically used a "message" key where the others used "error".
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, map[string]string{"message": "User not found."}
	case errors.Is(err, domain.ErrHotelNotFound):
		return http.StatusNotFound, map[string]string{"error": "Hotel not found."}
	case errors.Is(err, domain.ErrRoomNotFound):
		return http.StatusNotFound, map[string]string{"error": "Room not found."}
	case errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound, map[string]string{"error": "Booking not found."}
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusUnauthorized, map[string]string{"message": "You are not authorized to access this."}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, map[string]string{"error": "An error has occurred."}
}
