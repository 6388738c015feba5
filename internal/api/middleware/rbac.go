package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/netbeans/netbeans-server/internal/api/metrics"
	"github.com/netbeans/netbeans-server/internal/core/domain"
)

// RequireRoles enforces a per-route role allow-list. It must run after Auth.
// An empty allow-list admits every authenticated caller.
func RequireRoles(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := domain.IdentityFrom(c.Request().Context())
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("no_identity").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			if len(allowed) == 0 {
				return next(c)
			}
			if _, ok := allowed[id.Role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			return next(c)
		}
	}
}
