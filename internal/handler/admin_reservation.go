package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/davolio/osteria-reservations/internal/model"
	"github.com/davolio/osteria-reservations/internal/repository"
)

// AdminReservationHandler is the staff side of the reservation book:
// listing incoming requests and confirming or cancelling pending ones.
type AdminReservationHandler struct {
	repo *repository.ReservationRepo
}

func NewAdminReservationHandler(repo *repository.ReservationRepo) *AdminReservationHandler {
	return &AdminReservationHandler{repo: repo}
}

// List returns reservations newest first, optionally filtered by status.
//
// GET /v1/admin/reservations?status=pending
func (h *AdminReservationHandler) List(c echo.Context) error {
	status := strings.ToLower(strings.TrimSpace(c.QueryParam("status")))
	switch status {
	case "", model.ReservationPending, model.ReservationConfirmed, model.ReservationCancelled:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.repo.List(ctx, status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]reservationPart, 0, len(items))
	for _, r := range items {
		out = append(out, toReservationPart(r))
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": out, "count": len(out)})
}

type reservationPart struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	PartySize    string `json:"party_size"`
	Notes        string `json:"notes"`
	ConsentGiven bool   `json:"consent_given"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"created_at"`
}

func toReservationPart(r model.Reservation) reservationPart {
	return reservationPart{
		ID:           r.ID,
		Name:         r.Name,
		Phone:        r.Phone,
		PartySize:    r.PartySize,
		Notes:        r.Notes,
		ConsentGiven: r.ConsentGiven,
		Date:         r.Date,
		Time:         r.Time,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
	}
}

type statusReq struct {
	Status string `json:"status"`
}

// UpdateStatus confirms or cancels one pending reservation.  Only pending
// rows may transition; anything else answers 409.
//
// PATCH /v1/admin/reservations/:id/status
func (h *AdminReservationHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != model.ReservationConfirmed && status != model.ReservationCancelled {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be confirmed or cancelled"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.UpdateStatus(ctx, id, status); err != nil {
		switch {
		case errors.Is(err, repository.ErrReservationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		case errors.Is(err, repository.ErrInvalidTransition):
			return c.JSON(http.StatusConflict, echo.Map{"error": "reservation is not pending"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}

	res, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reload failed"})
	}
	return c.JSON(http.StatusOK, toReservationPart(res))
}
