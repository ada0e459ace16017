package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
)

func handle(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"validation error", domain.ErrEmailTaken, StatusValidationFailed, `{"error":"Email already used."}`},
		{"empty search", domain.ErrEmptySearch, StatusValidationFailed, `{"error":"At least one search field is required."}`},
		{"field not allowed", domain.ErrFieldNotAllowed, StatusValidationFailed, `{"error":"One of the fields cannot be used."}`},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, `{"message":"User not found."}`},
		{"hotel not found", domain.ErrHotelNotFound, http.StatusNotFound, `{"error":"Hotel not found."}`},
		{"room not found", domain.ErrRoomNotFound, http.StatusNotFound, `{"error":"Room not found."}`},
		{"booking not found", domain.ErrBookingNotFound, http.StatusNotFound, `{"error":"Booking not found."}`},
		{"not owner", domain.ErrNotOwner, http.StatusUnauthorized, `{"message":"You are not authorized to access this."}`},
		{"unknown error", errors.New("pg: connection refused"), http.StatusInternalServerError, `{"error":"An error has occurred."}`},
		{"http error passthrough", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, `{"error":"invalid payload"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := handle(t, tc.err)
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tc.wantBody {
				t.Fatalf("body = %s, want %s", got, tc.wantBody)
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	// mappings must survive wrapping
	wrapped := errors.Join(errors.New("lookup failed"), domain.ErrUserNotFound)
	rec := handle(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"message":"User not found."}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestErrorHandler_CommittedResponseLeftAlone(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = c.JSON(http.StatusOK, map[string]string{"success": "done"})
	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)

	if rec.Code != http.StatusOK {
		t.Fatalf("committed response was overwritten: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":"done"`) {
		t.Fatalf("committed body was altered: %s", rec.Body.String())
	}
}
