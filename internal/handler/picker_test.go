package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davolio/osteria-reservations/internal/schedule"
	"github.com/davolio/osteria-reservations/internal/session"
)

func newPickerHandler(t *testing.T) *PickerHandler {
	t.Helper()
	// No stored schedule: the compiled-in 13:00-15:30 defaults apply.
	sched := NewScheduleHandler(stubSettings{err: errors.New("no rows")}, schedule.Config{})
	h := NewPickerHandler(session.NewMemoryStore(time.Minute), sched)
	h.SetClock(fixedClock(2022, time.June, 15))
	return h
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) (*httptest.ResponseRecorder, pickerResp) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h(c))

	var resp pickerResp
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestPicker_OpenCreatesSession(t *testing.T) {
	h := newPickerHandler(t)

	rec, resp := postJSON(t, h.Open, `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp.SessionID)
	assert.True(t, resp.State.Open)
	assert.Equal(t, 2022, resp.State.Year)
	assert.Equal(t, 6, resp.State.Month)
}

func TestPicker_FullFlowCommits(t *testing.T) {
	h := newPickerHandler(t)

	_, opened := postJSON(t, h.Open, `{}`)
	id := opened.SessionID

	rec, resp := postJSON(t, h.SelectDate, fmt.Sprintf(`{"session_id":%q,"day":20}`, id))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2022-06-20", resp.State.SelectedDate)

	rec, resp = postJSON(t, h.SelectTime, fmt.Sprintf(`{"session_id":%q,"slot":"14:00"}`, id))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2022-06-20T14:00", resp.Effect.Committed)
	assert.True(t, resp.Effect.Closed)

	// The committed value must survive into the next request.
	rec, resp = postJSON(t, h.Open, fmt.Sprintf(`{"session_id":%q}`, id))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, resp.SessionID)
	assert.Equal(t, "2022-06-20T14:00", resp.State.Committed)
}

func TestPicker_SlotOutsideScheduleRejected(t *testing.T) {
	h := newPickerHandler(t)

	_, opened := postJSON(t, h.Open, `{}`)
	id := opened.SessionID
	postJSON(t, h.SelectDate, fmt.Sprintf(`{"session_id":%q,"day":20}`, id))

	// 12:00 is a well-formed time of day but not one of the 13:00-15:30
	// slots the default schedule produces.
	rec, _ := postJSON(t, h.SelectTime, fmt.Sprintf(`{"session_id":%q,"slot":"12:00"}`, id))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPicker_UnknownSessionIs404(t *testing.T) {
	h := newPickerHandler(t)

	rec, _ := postJSON(t, h.SelectDate, `{"session_id":"ghost","day":20}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPicker_MissingSessionIDIs400(t *testing.T) {
	h := newPickerHandler(t)

	rec, _ := postJSON(t, h.Back, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPicker_DismissKeepsSession(t *testing.T) {
	h := newPickerHandler(t)

	_, opened := postJSON(t, h.Open, `{}`)
	id := opened.SessionID

	rec, resp := postJSON(t, h.Dismiss, fmt.Sprintf(`{"session_id":%q}`, id))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, resp.State.Open)
	assert.True(t, resp.Effect.Closed)
	assert.Empty(t, resp.Effect.Committed)
}

func TestPicker_MonthNavigation(t *testing.T) {
	h := newPickerHandler(t)

	_, opened := postJSON(t, h.Open, `{}`)
	id := opened.SessionID

	rec, resp := postJSON(t, h.NextMonth, fmt.Sprintf(`{"session_id":%q}`, id))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, resp.State.Month)

	rec, resp = postJSON(t, h.PrevMonth, fmt.Sprintf(`{"session_id":%q}`, id))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 6, resp.State.Month)
}
