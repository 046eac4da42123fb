package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin enforces that the authenticated principal may perform admin
// operations.  It must run after Auth; when no principal is present in the
// context the request is rejected as unauthenticated rather than forbidden.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := Principal(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"message": "access denied, a bearer token must be provided",
				})
			}
			if !p.IsAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{
					"success": false,
					"message": "access denied",
				})
			}
			return next(c)
		}
	}
}
