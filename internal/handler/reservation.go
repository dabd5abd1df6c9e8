package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/davolio/osteria-reservations/internal/booking"
	"github.com/davolio/osteria-reservations/internal/model"
	"github.com/davolio/osteria-reservations/internal/queue"
	"github.com/davolio/osteria-reservations/internal/repository"
	queuepub "github.com/davolio/osteria-reservations/internal/service"
)

// reservationGateway is the append-only persistence boundary the form
// controller writes through: an INSERT into the reservations table,
// followed by a best-effort event publish.  The publish never fails the
// submission; the database row is the source of truth.
type reservationGateway struct {
	repo   *repository.ReservationRepo
	lastID uint64
}

func (g *reservationGateway) Append(ctx context.Context, rec booking.Record) error {
	res := model.Reservation{
		Name:         rec.Name,
		Phone:        rec.Phone,
		PartySize:    rec.PartySize,
		Notes:        rec.Notes,
		ConsentGiven: rec.ConsentGiven,
		Date:         rec.Date,
		Time:         rec.Time,
		Status:       rec.Status,
		CreatedAt:    rec.CreatedAt,
	}
	if err := g.repo.Create(ctx, &res); err != nil {
		return err
	}
	g.lastID = res.ID

	if err := queuepub.PublishReservationCreated(ctx, queue.ReservationCreatedEvent{
		ReservationID: res.ID,
		Name:          res.Name,
		Phone:         res.Phone,
		PartySize:     res.PartySize,
		Date:          res.Date,
		Time:          res.Time,
		Status:        res.Status,
		CreatedAt:     time.UnixMilli(res.CreatedAt).UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("reservation %d stored but event publish failed: %v", res.ID, err)
	}
	return nil
}

// ReservationHandler accepts widget submissions.  Every request runs a
// fresh form controller: the browser owns the in-progress draft, the
// server re-validates it and appends on success.
type ReservationHandler struct {
	repo     *repository.ReservationRepo
	schedule *ScheduleHandler
}

func NewReservationHandler(repo *repository.ReservationRepo, sched *ScheduleHandler) *ReservationHandler {
	return &ReservationHandler{repo: repo, schedule: sched}
}

type submitReq struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	PartySize        string `json:"party_size"`
	Notes            string `json:"notes"`
	ConsentGiven     bool   `json:"consent_given"`
	SelectedDateTime string `json:"selected_date_time"`
}

// Submit validates a submission and appends it.
//
// POST /v1/reservations
//
// 201 on success, 422 with per-field errors when validation fails, 500
// with the configured guest-facing message when persistence fails.
func (h *ReservationHandler) Submit(c echo.Context) error {
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	cfg := h.schedule.Resolve(c.Request().Context())

	gw := &reservationGateway{repo: h.repo}
	form := booking.NewController(gw)
	form.SetName(req.Name)
	form.SetPhone(req.Phone)
	advisory := form.SetPartySize(req.PartySize)
	form.SetNotes(req.Notes)
	form.SetConsent(req.ConsentGiven)
	form.SetDateTime(req.SelectedDateTime)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	state, err := form.Submit(ctx)
	if err != nil {
		// The draft survives server-side too: the guest's browser still
		// holds every field and may simply retry.
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"lifecycle": state,
			"error":     cfg.ErrorMessage,
		})
	}
	if state != booking.LifecycleSuccess {
		resp := echo.Map{
			"lifecycle":    state,
			"field_errors": form.FieldErrors(),
		}
		if advisory {
			resp["group_advisory"] = true
			resp["group_redirect"] = booking.GroupRedirectTarget
		}
		return c.JSON(http.StatusUnprocessableEntity, resp)
	}

	resp := echo.Map{
		"lifecycle":      state,
		"reservation_id": gw.lastID,
	}
	if advisory {
		resp["group_advisory"] = true
		resp["group_redirect"] = booking.GroupRedirectTarget
	}
	return c.JSON(http.StatusCreated, resp)
}

// GroupAdvisory answers whether a party size should be redirected to the
// group-menu flow instead of the widget.
//
// GET /v1/advisory/group?party_size=12
func (h *ReservationHandler) GroupAdvisory(c echo.Context) error {
	size := strings.TrimSpace(c.QueryParam("party_size"))
	if size == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "party_size required"})
	}
	large := booking.IsLargeParty(size)
	resp := echo.Map{"party_size": size, "group_advisory": large}
	if large {
		resp["group_redirect"] = booking.GroupRedirectTarget
	}
	return c.JSON(http.StatusOK, resp)
}
