package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// respond writes the success envelope: the payload fields are merged with
// "success": true so every 2xx body has the same shape.
func respond(c echo.Context, status int, payload echo.Map) error {
	body := echo.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(status, body)
}

// fail writes the failure envelope with a human-readable message.  The HTTP
// status carries the error category for programmatic callers.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"success": false, "message": message})
}

// pathID parses the :id path parameter.  A structurally invalid id is
// reported as 404 before any query runs, via errInvalidID from the caller.
func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// failInvalidID is the shared 404 response for malformed path identifiers.
func failInvalidID(c echo.Context) error {
	return fail(c, http.StatusNotFound, "invalid id '"+c.Param("id")+"' was passed")
}
