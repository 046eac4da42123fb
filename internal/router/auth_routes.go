package router

import (
	"github.com/labstack/echo/v4"

	"github.com/zainxyz/thriller/internal/handler"
	"github.com/zainxyz/thriller/internal/middleware"
)

// RegisterAuth registers account and session endpoints.  Registration and
// login are open; the current-user lookup requires a bearer token.
func RegisterAuth(e *echo.Echo, users *handler.UserHandler, auth *handler.AuthHandler, jwtSecret string) {
	// POST /api/users creates an account and returns a token alongside it,
	// so a fresh signup does not need a second round trip to log in.
	e.POST("/api/users", users.Register)
	// POST /api/auth exchanges email and password for an access token.
	e.POST("/api/auth", auth.Login)

	g := e.Group("/api/users")
	g.Use(middleware.Auth(jwtSecret))
	g.GET("/current", users.Current)
}
