package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davolio/osteria-reservations/internal/schedule"
)

var june15 = schedule.Date{Year: 2022, Month: 6, Day: 15}

func openPicker(t *testing.T) State {
	t.Helper()
	st, eff := Transition(New(2022, 6), Event{Kind: EventOpen}, june15)
	require.True(t, st.Open)
	require.Equal(t, ViewDate, st.View)
	require.Empty(t, eff.Committed)
	return st
}

func TestTransition_FullSelectionCommits(t *testing.T) {
	st := openPicker(t)

	st, eff := Transition(st, Event{Kind: EventSelectDate, Day: 15}, june15)
	require.Equal(t, ViewTime, st.View)
	assert.Equal(t, "2022-06-15", st.SelectedDate)
	assert.Empty(t, eff.Committed)

	st, eff = Transition(st, Event{Kind: EventSelectTime, Slot: "14:00"}, june15)
	assert.Equal(t, "2022-06-15T14:00", eff.Committed)
	assert.True(t, eff.Closed)
	assert.False(t, st.Open)
	assert.Equal(t, "2022-06-15T14:00", st.Committed)
}

func TestTransition_PastDayIsNoOp(t *testing.T) {
	st := openPicker(t)

	next, eff := Transition(st, Event{Kind: EventSelectDate, Day: 14}, june15)

	assert.Equal(t, st, next)
	assert.Empty(t, eff.Committed)
	assert.False(t, eff.Closed)
}

func TestTransition_TodayIsSelectable(t *testing.T) {
	st := openPicker(t)

	next, _ := Transition(st, Event{Kind: EventSelectDate, Day: 15}, june15)

	assert.Equal(t, ViewTime, next.View)
	assert.Equal(t, "2022-06-15", next.SelectedDate)
}

func TestTransition_DayOutOfMonthIsNoOp(t *testing.T) {
	st := openPicker(t)

	next, _ := Transition(st, Event{Kind: EventSelectDate, Day: 31}, june15)
	assert.Equal(t, st, next)

	next, _ = Transition(st, Event{Kind: EventSelectDate, Day: 0}, june15)
	assert.Equal(t, st, next)
}

func TestTransition_BackKeepsDate(t *testing.T) {
	st := openPicker(t)
	st, _ = Transition(st, Event{Kind: EventSelectDate, Day: 20}, june15)

	st, eff := Transition(st, Event{Kind: EventBack}, june15)

	assert.Equal(t, ViewDate, st.View)
	assert.Equal(t, "2022-06-20", st.SelectedDate)
	assert.Empty(t, eff.Committed)
}

func TestTransition_DismissNeverCommits(t *testing.T) {
	st := openPicker(t)
	st, _ = Transition(st, Event{Kind: EventSelectDate, Day: 20}, june15)

	st, eff := Transition(st, Event{Kind: EventDismiss}, june15)

	assert.False(t, st.Open)
	assert.True(t, eff.Closed)
	assert.Empty(t, eff.Committed)
	assert.Empty(t, st.Committed)
}

func TestTransition_ReopenStartsOnDateViewAndKeepsCommitted(t *testing.T) {
	st := openPicker(t)
	st, _ = Transition(st, Event{Kind: EventSelectDate, Day: 15}, june15)
	st, _ = Transition(st, Event{Kind: EventSelectTime, Slot: "14:00"}, june15)
	require.Equal(t, "2022-06-15T14:00", st.Committed)

	st, eff := Transition(st, Event{Kind: EventOpen}, june15)

	assert.True(t, st.Open)
	assert.Equal(t, ViewDate, st.View)
	assert.Equal(t, "2022-06-15T14:00", st.Committed)
	assert.Empty(t, eff.Committed) // reopening announces nothing new
}

func TestTransition_NewDateClearsEarlierTime(t *testing.T) {
	st := openPicker(t)
	st, _ = Transition(st, Event{Kind: EventSelectDate, Day: 15}, june15)
	st, _ = Transition(st, Event{Kind: EventSelectTime, Slot: "14:00"}, june15)
	st, _ = Transition(st, Event{Kind: EventOpen}, june15)

	st, _ = Transition(st, Event{Kind: EventSelectDate, Day: 20}, june15)

	assert.Equal(t, "2022-06-20", st.SelectedDate)
	assert.Empty(t, st.SelectedTime)
	// The earlier committed value stays until a new time is picked.
	assert.Equal(t, "2022-06-15T14:00", st.Committed)
}

func TestTransition_SelectTimeWithoutDateIsNoOp(t *testing.T) {
	st := openPicker(t)

	next, eff := Transition(st, Event{Kind: EventSelectTime, Slot: "14:00"}, june15)

	assert.Equal(t, st, next)
	assert.Empty(t, eff.Committed)
}

func TestTransition_MalformedSlotIsNoOp(t *testing.T) {
	st := openPicker(t)
	st, _ = Transition(st, Event{Kind: EventSelectDate, Day: 15}, june15)

	next, eff := Transition(st, Event{Kind: EventSelectTime, Slot: "2pm"}, june15)

	assert.Equal(t, st, next)
	assert.Empty(t, eff.Committed)
}

func TestTransition_MonthNavigationRollsOver(t *testing.T) {
	st := openPicker(t)

	for i := 0; i < 7; i++ {
		st, _ = Transition(st, Event{Kind: EventNextMonth}, june15)
	}
	assert.Equal(t, 2023, st.Year)
	assert.Equal(t, 1, st.Month)

	st, _ = Transition(st, Event{Kind: EventPrevMonth}, june15)
	assert.Equal(t, 2022, st.Year)
	assert.Equal(t, 12, st.Month)
}

func TestTransition_EventsOnClosedPickerAreNoOps(t *testing.T) {
	st := New(2022, 6)

	for _, kind := range []EventKind{EventSelectDate, EventSelectTime, EventBack, EventPrevMonth, EventNextMonth} {
		next, eff := Transition(st, Event{Kind: kind, Day: 15, Slot: "14:00"}, june15)
		assert.Equal(t, st, next, "kind %s", kind)
		assert.Empty(t, eff.Committed, "kind %s", kind)
	}
}
