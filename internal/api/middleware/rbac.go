package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Titan327/4CITE-backend/pkg/token"
)

// The denial body is historically French; clients match on it verbatim.
const msgAccessRefused = "Acces refusé"

// RBAC enforces role-based access control. It must run after Auth: absent
// claims are treated as a denial, never as a pass.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(CtxUserKey).(*token.Claims)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"message": msgAccessRefused})
			}
			if _, ok := allowed[claims.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"message": msgAccessRefused})
			}
			return next(c)
		}
	}
}
