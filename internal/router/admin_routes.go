package router

import (
	"github.com/labstack/echo/v4"

	"github.com/davolio/osteria-reservations/internal/handler"
	"github.com/davolio/osteria-reservations/internal/middleware"
)

// RegisterAdmin registers the staff-side endpoints under /v1/admin: the
// reservation book and the opening-hours settings.  Every route requires a
// valid JWT with a staff role.
func RegisterAdmin(
	e *echo.Echo,
	res *handler.AdminReservationHandler,
	sched *handler.AdminScheduleHandler,
	jwtSecret string,
) {
	g := e.Group("/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("STAFF", "ADMIN"),
	)
	g.GET("/reservations", res.List)
	g.PATCH("/reservations/:id/status", res.UpdateStatus)
	g.GET("/schedule", sched.Get)
	g.PUT("/schedule", sched.Update)
}
