package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
)

type stubAuthService struct {
	registerErr error
	loginToken  string
	loginErr    error
	lastInput   ports.RegisterInput
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) error {
	s.lastInput = input
	return s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, error) {
	return s.loginToken, s.loginErr
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	rec := postJSON(t, h.Register,
		`{"name":"John","surname":"Doe","pseudo":"jd","email":"j@x.com","password":"Password1@"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"success":"Registered user."}` {
		t.Fatalf("unexpected body: %s", got)
	}
	if svc.lastInput.Email != "j@x.com" || svc.lastInput.Password != "Password1@" {
		t.Fatalf("input not forwarded: %+v", svc.lastInput)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrPasswordTooWeak})

	rec := postJSON(t, h.Register, `{"email":"j@x.com","password":"weak"}`)

	if rec.Code != statusValidationFailed {
		t.Fatalf("status = %d, want 449", rec.Code)
	}
	want := `{"error":"` + domain.ErrPasswordTooWeak.Message + `"}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Fatalf("body = %s, want %s", got, want)
	}
}

func TestAuthHandler_Register_InternalError(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: context.DeadlineExceeded})

	rec := postJSON(t, h.Register, `{"email":"j@x.com","password":"Password1@"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	// no trailing period on the auth routes
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"An error has occurred"}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestAuthHandler_Login_ReturnsToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginToken: "signed-token"})

	rec := postJSON(t, h.Login, `{"email":"j@x.com","password":"Password1@"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"token":"signed-token"}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestAuthHandler_Login_WrongCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	rec := postJSON(t, h.Login, `{"email":"j@x.com","password":"nope"}`)

	if rec.Code != statusValidationFailed {
		t.Fatalf("status = %d, want 449", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"Wrong password or email."}` {
		t.Fatalf("unexpected body: %s", got)
	}
}
