package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/davolio/osteria-reservations/internal/model"
	"github.com/davolio/osteria-reservations/internal/schedule"
)

// scheduleSource is the slice of the settings repository the public
// handlers need.  Keeping it an interface lets the tests drop in a stub
// without a database.
type scheduleSource interface {
	GetSchedule(ctx context.Context) (model.ScheduleSetting, error)
}

// ScheduleHandler serves the slot list and the calendar grid the widget
// renders.  Opening hours come from the stored settings row; when that is
// missing the env fallback applies, and compiled-in defaults back both.
type ScheduleHandler struct {
	settings scheduleSource
	fallback schedule.Config
	now      func() time.Time
}

func NewScheduleHandler(src scheduleSource, fallback schedule.Config) *ScheduleHandler {
	return &ScheduleHandler{settings: src, fallback: fallback.Normalize(), now: time.Now}
}

// SetClock overrides the time source; tests pin "today".
func (h *ScheduleHandler) SetClock(now func() time.Time) { h.now = now }

// Resolve returns the effective schedule configuration.  A failed or empty
// settings read falls back silently; configuration trouble must never
// surface to guests as an error page.
func (h *ScheduleHandler) Resolve(ctx context.Context) schedule.Config {
	s, err := h.settings.GetSchedule(ctx)
	if err != nil {
		return h.fallback
	}
	cfg := schedule.Config{
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		IntervalMinutes: s.IntervalMinutes,
		ErrorMessage:    s.ErrorMessage,
	}
	return cfg.Normalize()
}

// Slots returns the bookable times of day for the current opening hours.
//
// GET /v1/schedule/slots
func (h *ScheduleHandler) Slots(c echo.Context) error {
	cfg := h.Resolve(c.Request().Context())
	slots := schedule.Slots(cfg)
	if slots == nil {
		slots = []string{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"slots":            slots,
		"start_time":       cfg.StartTime,
		"end_time":         cfg.EndTime,
		"interval_minutes": cfg.IntervalMinutes,
	})
}

// Calendar returns the month grid for the requested year and month.  The
// grid is Monday-first; days strictly before today are flagged as past.
//
// GET /v1/schedule/calendar?year=2026&month=8
func (h *ScheduleHandler) Calendar(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil || year < 1 || year > 9999 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year"})
	}
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil || month < 1 || month > 12 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid month"})
	}
	today := schedule.Today(h.now())
	return c.JSON(http.StatusOK, schedule.MonthGrid(year, month, today))
}
