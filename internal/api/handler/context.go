package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Titan327/4CITE-backend/internal/api/middleware"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
	"github.com/Titan327/4CITE-backend/pkg/token"
)

// ctxClaims extracts the claims injected by the Auth middleware. Their
// presence proves the middleware ran; a protected handler reached without
// them is a routing mistake and fails closed.
func ctxClaims(c echo.Context) (*token.Claims, error) {
	claims, ok := c.Get(middleware.CtxUserKey).(*token.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// ctxActor narrows the claims to the identity the services gate on.
func ctxActor(c echo.Context) (ports.Actor, error) {
	claims, err := ctxClaims(c)
	if err != nil {
		return ports.Actor{}, err
	}
	return ports.Actor{ID: claims.ID, Role: claims.Role}, nil
}
