package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/davolio/osteria-reservations/internal/picker"
	"github.com/davolio/osteria-reservations/internal/schedule"
	"github.com/davolio/osteria-reservations/internal/session"
	"github.com/davolio/osteria-reservations/internal/utils"
)

// PickerHandler exposes the date/time picker as a handful of event
// endpoints.  Each request loads the session's state, applies exactly one
// transition and saves the result, so the committed value is visible to
// the very next request.  The transition itself lives in the picker
// package; this layer only adds sessions and slot-membership checks.
type PickerHandler struct {
	store    session.Store
	schedule *ScheduleHandler
	now      func() time.Time
}

func NewPickerHandler(store session.Store, sched *ScheduleHandler) *PickerHandler {
	return &PickerHandler{store: store, schedule: sched, now: time.Now}
}

// SetClock overrides the time source; tests pin "today".
func (h *PickerHandler) SetClock(now func() time.Time) { h.now = now }

type pickerReq struct {
	SessionID string `json:"session_id"`
	Day       int    `json:"day,omitempty"`
	Slot      string `json:"slot,omitempty"`
}

type pickerResp struct {
	SessionID string        `json:"session_id"`
	State     picker.State  `json:"state"`
	Effect    picker.Effect `json:"effect"`
}

// Open starts or resumes a picker session.  An unknown or absent session
// ID gets a fresh session positioned on the current month; a known one
// reopens with its earlier selection and committed value intact.
//
// POST /v1/picker/open
func (h *PickerHandler) Open(c echo.Context) error {
	var req pickerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx := c.Request().Context()
	today := schedule.Today(h.now())

	id := req.SessionID
	var st picker.State
	if id != "" {
		loaded, err := h.store.Load(ctx, id)
		switch {
		case err == nil:
			st = loaded
		case errors.Is(err, session.ErrNotFound):
			id = "" // expired; issue a fresh session below
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session load failed"})
		}
	}
	if id == "" {
		fresh, err := utils.NewSessionID()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session create failed"})
		}
		id = fresh
		st = picker.New(today.Year, today.Month)
	}

	next, eff := picker.Transition(st, picker.Event{Kind: picker.EventOpen}, today)
	if err := h.store.Save(ctx, id, next); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session save failed"})
	}
	return c.JSON(http.StatusOK, pickerResp{SessionID: id, State: next, Effect: eff})
}

// SelectDate picks a day on the month grid.
//
// POST /v1/picker/select-date
func (h *PickerHandler) SelectDate(c echo.Context) error {
	return h.apply(c, func(req pickerReq) picker.Event {
		return picker.Event{Kind: picker.EventSelectDate, Day: req.Day}
	})
}

// SelectTime picks a slot on the time view.  The slot must be one the
// current opening hours actually produce; the state machine alone only
// checks the "HH:MM" shape.
//
// POST /v1/picker/select-time
func (h *PickerHandler) SelectTime(c echo.Context) error {
	var req pickerReq
	if err := c.Bind(&req); err != nil || req.SessionID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "session_id required"})
	}
	cfg := h.schedule.Resolve(c.Request().Context())
	if !schedule.HasSlot(cfg, req.Slot) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown slot"})
	}
	return h.dispatch(c, req, picker.Event{Kind: picker.EventSelectTime, Slot: req.Slot})
}

// Back returns from the time view to the month grid, keeping the date.
//
// POST /v1/picker/back
func (h *PickerHandler) Back(c echo.Context) error {
	return h.apply(c, func(pickerReq) picker.Event {
		return picker.Event{Kind: picker.EventBack}
	})
}

// Dismiss closes the picker without committing anything.
//
// POST /v1/picker/dismiss
func (h *PickerHandler) Dismiss(c echo.Context) error {
	return h.apply(c, func(pickerReq) picker.Event {
		return picker.Event{Kind: picker.EventDismiss}
	})
}

// PrevMonth navigates the grid one month back.
//
// POST /v1/picker/prev-month
func (h *PickerHandler) PrevMonth(c echo.Context) error {
	return h.apply(c, func(pickerReq) picker.Event {
		return picker.Event{Kind: picker.EventPrevMonth}
	})
}

// NextMonth navigates the grid one month forward.
//
// POST /v1/picker/next-month
func (h *PickerHandler) NextMonth(c echo.Context) error {
	return h.apply(c, func(pickerReq) picker.Event {
		return picker.Event{Kind: picker.EventNextMonth}
	})
}

func (h *PickerHandler) apply(c echo.Context, build func(pickerReq) picker.Event) error {
	var req pickerReq
	if err := c.Bind(&req); err != nil || req.SessionID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "session_id required"})
	}
	return h.dispatch(c, req, build(req))
}

func (h *PickerHandler) dispatch(c echo.Context, req pickerReq, ev picker.Event) error {
	ctx := c.Request().Context()

	st, err := h.store.Load(ctx, req.SessionID)
	if errors.Is(err, session.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session load failed"})
	}

	next, eff := picker.Transition(st, ev, schedule.Today(h.now()))
	if err := h.store.Save(ctx, req.SessionID, next); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session save failed"})
	}
	return c.JSON(http.StatusOK, pickerResp{SessionID: req.SessionID, State: next, Effect: eff})
}
