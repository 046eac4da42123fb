// Package router registers the HTTP routes of the API and owns the central
// error handler that keeps every response in the success/failure envelope.
package router

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zainxyz/thriller/internal/handler"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check for load balancers and monitors.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// NewHTTPErrorHandler returns an error handler that converts anything a
// handler returned as an error (or Echo raised itself, e.g. a 404 on an
// unknown route) into the failure envelope.  The concrete error text is only
// included in dev so internals never leak in production responses.
func NewHTTPErrorHandler(env string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "something failed on our end"
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			if s, ok := he.Message.(string); ok {
				message = s
			}
		} else if env == "dev" {
			message = err.Error()
		}
		if status >= http.StatusInternalServerError {
			log.Printf("http: request failed: %v", err)
		}

		if writeErr := c.JSON(status, echo.Map{"success": false, "message": message}); writeErr != nil {
			log.Printf("http: could not write error response: %v", writeErr)
		}
	}
}
