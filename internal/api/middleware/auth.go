package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stocktrack/inventory-api/internal/api/metrics"
	"github.com/stocktrack/inventory-api/internal/core/auth"
)

// ContextKeySecurity is the echo context key the security context is stored
// under for handlers that read it from echo rather than the request context.
const ContextKeySecurity = "security_context"

// Auth validates the bearer token and injects the security context.
//
// Public paths bypass token extraction entirely. Everything else requires a
// well-formed `Authorization: Bearer <token>` header with a token the codec
// accepts; any failure rejects with 401 before the handler runs. The reason
// for a token rejection is never exposed to the client.
func Auth(codec *auth.Codec, publicPaths ...string) echo.MiddlewareFunc {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := public[c.Path()]; ok {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Validate(parts[1])
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("failure").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			metrics.TokenValidationsTotal.WithLabelValues("success").Inc()

			sc := auth.SecurityContext{Subject: claims.Subject, Role: claims.Role}
			c.Set(ContextKeySecurity, sc)
			c.SetRequest(c.Request().WithContext(auth.WithSecurityContext(c.Request().Context(), sc)))

			return next(c)
		}
	}
}
