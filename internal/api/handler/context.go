package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stocktrack/inventory-api/internal/core/auth"
)

// securityContext extracts the security context injected by the Auth
// middleware. Its presence proves the middleware ran; absence on a protected
// route means the chain is miswired, so fail closed with 401.
func securityContext(c echo.Context) (auth.SecurityContext, error) {
	sc, ok := auth.SecurityContextFrom(c.Request().Context())
	if !ok {
		return auth.SecurityContext{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return sc, nil
}
