package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esdoorn/practice-api/internal/api/metrics"
)

// RBAC enforces role-based access control. It runs after Auth, so an empty
// role means the request never passed authentication.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient privilege"})
			}
			return next(c)
		}
	}
}
