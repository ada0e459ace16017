package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Titan327/4CITE-backend/pkg/token"
)

// CtxUserKey is the echo context key under which Auth stores the verified
// *token.Claims.
const CtxUserKey = "user"

// Response bodies are part of the wire contract and kept verbatim, including
// the distinct statuses: malformed or expired tokens are 401, a failed
// signature check is 403.
const (
	msgNotAuthorized = "You are not authorized to access this."
	msgInvalidHeader = "Invalid header format."
	msgAccessDenied  = "Access denied."
	msgTokenExpired  = "Token expired."
)

// Auth verifies the bearer token and injects the claims into the request
// context. Token validity is a 7-day window from the iat claim, computed in
// whole seconds.
func Auth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": msgNotAuthorized})
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": msgNotAuthorized})
			}
			if !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": msgInvalidHeader})
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				return c.JSON(http.StatusForbidden, map[string]string{"message": msgAccessDenied})
			}
			if claims.Expired(time.Now()) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": msgTokenExpired})
			}

			c.Set(CtxUserKey, claims)
			return next(c)
		}
	}
}
