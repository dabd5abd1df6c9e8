package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/davolio/osteria-reservations/internal/config"
	"github.com/davolio/osteria-reservations/internal/handler"
	"github.com/davolio/osteria-reservations/internal/middleware"
)

// RegisterPublic registers every guest-facing endpoint of the widget: the
// schedule reads, the picker session events, the group advisory and the
// reservation submission itself.  No authentication; the read endpoints
// get the Redis response cache, everything gets the rate limiter.
func RegisterPublic(
	e *echo.Echo,
	sched *handler.ScheduleHandler,
	pick *handler.PickerHandler,
	res *handler.ReservationHandler,
	rdb *redis.Client,
) {
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	g := e.Group("/v1", limiter)

	// Read endpoints only vary with the stored schedule, so they are safe
	// to cache briefly.
	g.GET("/schedule/slots", sched.Slots, cache)
	g.GET("/schedule/calendar", sched.Calendar, cache)
	g.GET("/advisory/group", res.GroupAdvisory)

	p := g.Group("/picker")
	p.POST("/open", pick.Open)
	p.POST("/select-date", pick.SelectDate)
	p.POST("/select-time", pick.SelectTime)
	p.POST("/back", pick.Back)
	p.POST("/dismiss", pick.Dismiss)
	p.POST("/prev-month", pick.PrevMonth)
	p.POST("/next-month", pick.NextMonth)

	g.POST("/reservations", res.Submit)
}
