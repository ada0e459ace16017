package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Titan327/4CITE-backend/internal/api/metrics"
	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
)

// statusValidationFailed mirrors api.StatusValidationFailed; the handler
// package cannot import its parent.
const statusValidationFailed = 449

// The auth routes historically replied 500 with this body, without the
// trailing period the other resources use.
const msgAuthInternalError = "An error has occurred"

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Pseudo   string `json:"pseudo"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  map[string]string
// @Failure      449   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Pseudo:   req.Pseudo,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
			return c.JSON(statusValidationFailed, map[string]string{"error": ve.Message})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgAuthInternalError})
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, map[string]string{"success": "Registered user."})
}

// Login authenticates a user and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  map[string]string
// @Failure      449   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	signed, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return c.JSON(statusValidationFailed, map[string]string{"error": ve.Message})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": msgAuthInternalError})
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, map[string]string{"token": signed})
}
