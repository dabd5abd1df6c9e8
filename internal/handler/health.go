package handler // HTTP handlers for the reservation widget API

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the liveness endpoint used by the load balancer.  It returns a
// plain "ok" and deliberately touches no dependency, so a dead database or
// broker never takes the process out of rotation.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
