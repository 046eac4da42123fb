package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zainxyz/thriller/internal/utils"
)

// Context keys under which the authenticated principal is stored.  Handlers
// read these through the Principal helper rather than touching echo.Context
// directly.
const (
	ctxUserID  = "user_id"
	ctxIsAdmin = "is_admin"
)

// Auth returns an Echo middleware that authenticates a request from its
// Authorization header.  The failure ladder distinguishes three cases:
// a missing header is 401 (no credential offered), a header without the
// "Bearer " scheme prefix is 400 (malformed credential), and a token that
// fails verification is 400 (invalid credential).  On success the decoded
// principal is attached to the request context for downstream middleware
// and handlers.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false,
					"message": "access denied, a bearer token must be provided",
				})
			}
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusBadRequest, echo.Map{
					"success": false,
					"message": "invalid token",
				})
			}
			raw := strings.TrimPrefix(header, "Bearer ")
			p, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{
					"success": false,
					"message": "invalid token",
				})
			}
			c.Set(ctxUserID, p.UserID)
			c.Set(ctxIsAdmin, p.IsAdmin)
			return next(c)
		}
	}
}

// Principal extracts the authenticated identity placed in the context by
// Auth.  ok is false when no principal is present, i.e. the route was not
// wrapped by Auth.
func Principal(c echo.Context) (utils.Principal, bool) {
	id, ok := c.Get(ctxUserID).(uint64)
	if !ok {
		return utils.Principal{}, false
	}
	admin, _ := c.Get(ctxIsAdmin).(bool)
	return utils.Principal{UserID: id, IsAdmin: admin}, true
}
