// Package picker implements the date/time selection state machine of the
// booking widget.  The machine is expressed as a pure transition function
// over an explicit State value so it can be exercised without any HTTP or
// rendering harness; the handler layer is a thin adapter that loads a
// State, applies one event and stores the result.
package picker

import (
	"fmt"

	"github.com/davolio/osteria-reservations/internal/schedule"
)

// View identifies which of the two picker screens is showing.
type View string

const (
	// ViewDate is the month-grid screen and the initial view.  Reopening
	// the picker always returns here, even when a value was already
	// committed, so the guest re-affirms the date before changing the time.
	ViewDate View = "date"
	// ViewTime is the slot-list screen shown after a valid day was chosen.
	ViewTime View = "time"
)

// EventKind enumerates the interactions the host surface can raise.
type EventKind string

const (
	EventOpen       EventKind = "open"
	EventSelectDate EventKind = "select_date"
	EventSelectTime EventKind = "select_time"
	EventBack       EventKind = "back"
	// EventDismiss models any close-without-commit interaction: outside
	// click, focus loss, escape.  It is legal in every state and never
	// touches the committed value.
	EventDismiss   EventKind = "dismiss"
	EventPrevMonth EventKind = "prev_month"
	EventNextMonth EventKind = "next_month"
)

// Event is one interaction.  Day is set for select_date, Slot for
// select_time; both are ignored otherwise.
type Event struct {
	Kind EventKind `json:"kind"`
	Day  int       `json:"day,omitempty"`
	Slot string    `json:"slot,omitempty"`
}

// State is the complete, serializable picker state.  Year/Month track the
// month the grid currently shows.  SelectedDate holds "YYYY-MM-DD" once a
// day was chosen; Committed holds the last value handed to the host as
// "YYYY-MM-DDTHH:MM" and survives dismiss/reopen cycles.
type State struct {
	Open         bool   `json:"open"`
	View         View   `json:"view"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	SelectedDate string `json:"selected_date,omitempty"`
	SelectedTime string `json:"selected_time,omitempty"`
	Committed    string `json:"committed,omitempty"`
}

// Effect reports what the host surface must do after a transition.
// Committed is non-empty exactly when a date+time pair was just committed;
// the value must reach the form controller synchronously.  Closed asks the
// host to collapse the picker.
type Effect struct {
	Committed string `json:"committed,omitempty"`
	Closed    bool   `json:"closed,omitempty"`
}

// New returns a closed picker positioned on the given month.
func New(year, month int) State {
	return State{View: ViewDate, Year: year, Month: month}
}

// Transition applies one event and returns the next state plus the effect
// the host must perform.  Invalid events for the current state are no-ops:
// the same state comes back unchanged and the effect is empty.  The today
// argument drives past-day rejection and is injected by the caller.
func Transition(s State, ev Event, today schedule.Date) (State, Effect) {
	switch ev.Kind {
	case EventOpen:
		// Opening always lands on the date view.  An existing selection
		// and committed value are preserved so that open-then-dismiss
		// changes nothing.
		s.Open = true
		s.View = ViewDate
		return s, Effect{}

	case EventDismiss:
		if !s.Open {
			return s, Effect{}
		}
		s.Open = false
		return s, Effect{Closed: true}

	case EventPrevMonth:
		if !s.Open || s.View != ViewDate {
			return s, Effect{}
		}
		s.Year, s.Month = schedule.AdvanceMonth(s.Year, s.Month, -1)
		return s, Effect{}

	case EventNextMonth:
		if !s.Open || s.View != ViewDate {
			return s, Effect{}
		}
		s.Year, s.Month = schedule.AdvanceMonth(s.Year, s.Month, 1)
		return s, Effect{}

	case EventSelectDate:
		if !s.Open || s.View != ViewDate {
			return s, Effect{}
		}
		if ev.Day < 1 || ev.Day > schedule.DaysInMonth(s.Year, s.Month) {
			return s, Effect{}
		}
		chosen := schedule.Date{Year: s.Year, Month: s.Month, Day: ev.Day}
		if chosen.Before(today) {
			// Past days are rendered but never selectable.
			return s, Effect{}
		}
		s.SelectedDate = chosen.String()
		s.SelectedTime = "" // a new date invalidates any earlier time
		s.View = ViewTime
		return s, Effect{}

	case EventSelectTime:
		if !s.Open || s.View != ViewTime || s.SelectedDate == "" {
			return s, Effect{}
		}
		if _, err := schedule.ParseTimeOfDay(ev.Slot); err != nil {
			return s, Effect{}
		}
		s.SelectedTime = ev.Slot
		s.Committed = fmt.Sprintf("%sT%s", s.SelectedDate, ev.Slot)
		s.Open = false
		return s, Effect{Committed: s.Committed, Closed: true}

	case EventBack:
		if !s.Open || s.View != ViewTime {
			return s, Effect{}
		}
		// Back keeps the selected date; the guest may just want another
		// look at the grid.
		s.View = ViewDate
		return s, Effect{}
	}
	return s, Effect{}
}
