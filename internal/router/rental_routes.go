package router

import (
	"github.com/labstack/echo/v4"

	"github.com/zainxyz/thriller/internal/handler"
	"github.com/zainxyz/thriller/internal/middleware"
)

// RegisterRentals registers the rental lifecycle endpoints.  Every rental
// operation touches money and stock, so the whole group requires a token.
func RegisterRentals(e *echo.Echo, rentals *handler.RentalHandler, jwtSecret string) {
	auth := middleware.Auth(jwtSecret)

	e.GET("/api/rentals", rentals.List, auth)
	e.POST("/api/rentals", rentals.Create, auth)
	e.POST("/api/returns", rentals.Return, auth)
}
