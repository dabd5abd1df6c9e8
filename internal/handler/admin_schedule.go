package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/davolio/osteria-reservations/internal/model"
	"github.com/davolio/osteria-reservations/internal/repository"
	"github.com/davolio/osteria-reservations/internal/schedule"
)

// AdminScheduleHandler lets staff edit the opening-hours row the widget
// reads its slots from.
type AdminScheduleHandler struct {
	repo *repository.SettingsRepo
}

func NewAdminScheduleHandler(repo *repository.SettingsRepo) *AdminScheduleHandler {
	return &AdminScheduleHandler{repo: repo}
}

type scheduleReq struct {
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	IntervalMinutes int    `json:"interval_minutes"`
	ErrorMessage    string `json:"error_message"`
}

// Update replaces the stored schedule.  Unlike the guest-facing read path,
// staff input is validated strictly: bad values here would silently empty
// the widget's slot list for everyone.
//
// PUT /v1/admin/schedule
func (h *AdminScheduleHandler) Update(c echo.Context) error {
	var req scheduleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	start, err := schedule.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time must be HH:MM"})
	}
	end, err := schedule.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_time must be HH:MM"})
	}
	if start > end {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time must not be after end_time"})
	}
	if req.IntervalMinutes <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "interval_minutes must be positive"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	setting := model.ScheduleSetting{
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		IntervalMinutes: req.IntervalMinutes,
		ErrorMessage:    req.ErrorMessage,
		UpdatedAt:       time.Now().UTC(),
	}
	if err := h.repo.UpsertSchedule(ctx, setting); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}

	cfg := schedule.Config{
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		IntervalMinutes: req.IntervalMinutes,
		ErrorMessage:    req.ErrorMessage,
	}.Normalize()
	return c.JSON(http.StatusOK, echo.Map{
		"schedule": cfg,
		"slots":    schedule.Slots(cfg),
	})
}

// Get returns the stored schedule row, or 404 when staff never saved one
// and the service is running on fallbacks.
//
// GET /v1/admin/schedule
func (h *AdminScheduleHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.repo.GetSchedule(ctx)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no stored schedule"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"start_time":       s.StartTime,
		"end_time":         s.EndTime,
		"interval_minutes": s.IntervalMinutes,
		"error_message":    s.ErrorMessage,
		"updated_at":       s.UpdatedAt,
	})
}
