package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/event-platform/internal/core/domain"
)

// AdminOnly rejects requests whose token role is not admin. The role claim is
// trusted as signed; it is not re-checked against the store, so a role change
// only takes effect once the user logs in again and gets a fresh token.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != domain.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin only"})
			}
			return next(c)
		}
	}
}
