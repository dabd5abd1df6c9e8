package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davolio/osteria-reservations/internal/model"
	"github.com/davolio/osteria-reservations/internal/schedule"
)

// stubSettings implements scheduleSource without a database.
type stubSettings struct {
	setting model.ScheduleSetting
	err     error
}

func (s stubSettings) GetSchedule(context.Context) (model.ScheduleSetting, error) {
	return s.setting, s.err
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func doGET(t *testing.T, h echo.HandlerFunc, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestScheduleSlots_FromStoredSetting(t *testing.T) {
	src := stubSettings{setting: model.ScheduleSetting{
		StartTime: "18:00", EndTime: "19:00", IntervalMinutes: 30,
	}}
	h := NewScheduleHandler(src, schedule.Config{})

	rec, body := doGET(t, h.Slots, "/v1/schedule/slots")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"18:00", "18:30", "19:00"}, body["slots"])
	assert.Equal(t, "18:00", body["start_time"])
}

func TestScheduleSlots_FallbackWhenUnset(t *testing.T) {
	src := stubSettings{err: errors.New("no rows")}
	h := NewScheduleHandler(src, schedule.Config{})

	rec, body := doGET(t, h.Slots, "/v1/schedule/slots")

	assert.Equal(t, http.StatusOK, rec.Code)
	slots, ok := body["slots"].([]any)
	require.True(t, ok)
	require.Len(t, slots, 11)
	assert.Equal(t, "13:00", slots[0])
	assert.Equal(t, "15:30", slots[10])
}

func TestScheduleCalendar_JuneGrid(t *testing.T) {
	h := NewScheduleHandler(stubSettings{err: errors.New("no rows")}, schedule.Config{})
	h.SetClock(fixedClock(2022, time.June, 15))

	rec, body := doGET(t, h.Calendar, "/v1/schedule/calendar?year=2022&month=6")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["leading_blanks"])
	days, ok := body["days"].([]any)
	require.True(t, ok)
	require.Len(t, days, 30)

	first := days[0].(map[string]any)
	assert.Equal(t, float64(1), first["day"])
	assert.Equal(t, true, first["is_past"])
	fifteenth := days[14].(map[string]any)
	assert.Equal(t, false, fifteenth["is_past"])
}

func TestScheduleCalendar_RejectsBadParams(t *testing.T) {
	h := NewScheduleHandler(stubSettings{}, schedule.Config{})

	for _, target := range []string{
		"/v1/schedule/calendar",
		"/v1/schedule/calendar?year=2022&month=13",
		"/v1/schedule/calendar?year=abc&month=6",
		"/v1/schedule/calendar?year=2022&month=0",
	} {
		rec, _ := doGET(t, h.Calendar, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestGroupAdvisory(t *testing.T) {
	h := NewReservationHandler(nil, NewScheduleHandler(stubSettings{}, schedule.Config{}))

	rec, body := doGET(t, h.GroupAdvisory, "/v1/advisory/group?party_size=12")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["group_advisory"])
	assert.Equal(t, "/menu?view=group", body["group_redirect"])

	rec, body = doGET(t, h.GroupAdvisory, "/v1/advisory/group?party_size=4")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["group_advisory"])
	assert.NotContains(t, body, "group_redirect")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/advisory/group", nil)
	recorder := httptest.NewRecorder()
	require.NoError(t, h.GroupAdvisory(e.NewContext(req, recorder)))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.True(t, strings.Contains(recorder.Body.String(), "party_size"))
}
