package router

import (
	"github.com/labstack/echo/v4"

	"github.com/zainxyz/thriller/internal/handler"
	"github.com/zainxyz/thriller/internal/middleware"
)

// RegisterCatalog registers the genre, movie and customer endpoints.  Reads
// are public and pass through the response cache; writes require a bearer
// token and deletes additionally require the admin role.
func RegisterCatalog(
	e *echo.Echo,
	genres *handler.GenreHandler,
	movies *handler.MovieHandler,
	customers *handler.CustomerHandler,
	jwtSecret string,
	cache echo.MiddlewareFunc,
) {
	auth := middleware.Auth(jwtSecret)
	admin := middleware.RequireAdmin()

	e.GET("/api/genres", genres.List, cache)
	e.GET("/api/genres/:id", genres.Get, cache)
	e.POST("/api/genres", genres.Create, auth)
	e.PUT("/api/genres/:id", genres.Update, auth)
	e.DELETE("/api/genres/:id", genres.Delete, auth, admin)

	e.GET("/api/movies", movies.List, cache)
	e.GET("/api/movies/:id", movies.Get, cache)
	e.POST("/api/movies", movies.Create, auth)
	e.PUT("/api/movies/:id", movies.Update, auth)
	e.DELETE("/api/movies/:id", movies.Delete, auth, admin)

	e.GET("/api/customers", customers.List, cache)
	e.GET("/api/customers/:id", customers.Get, cache)
	e.POST("/api/customers", customers.Create, auth)
	e.PUT("/api/customers/:id", customers.Update, auth)
	e.DELETE("/api/customers/:id", customers.Delete, auth, admin)
}
