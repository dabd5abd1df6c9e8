// Package schedule turns the restaurant's opening-hours configuration into
// the data the booking widget renders: the list of selectable time slots and
// the month grid of the date picker.  Everything in this package is a pure
// function over plain integers and "HH:MM"/"YYYY-MM-DD" strings so that slot
// boundaries and past-date checks stay deterministic under test, independent
// of the host's local timezone.
package schedule

import (
	"fmt"
	"time"
)

// Config describes the bookable window of a service period.  StartTime and
// EndTime are times of day in "HH:MM" form; EndTime is inclusive, so a slot
// that lands exactly on it is still emitted.  IntervalMinutes is the spacing
// between consecutive slots.
type Config struct {
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	IntervalMinutes int    `json:"interval_minutes"`
	// ErrorMessage is the user-facing text shown when a submission fails.
	// It rides along with the scheduling config because both come from the
	// same settings record.
	ErrorMessage string `json:"error_message"`
}

// Defaults applied when the stored configuration is absent or degenerate.
const (
	DefaultStartTime       = "13:00"
	DefaultEndTime         = "15:30"
	DefaultIntervalMinutes = 15
	DefaultErrorMessage    = "We could not save your reservation. Please try again."
)

// Normalize fills missing fields with the documented defaults.  A config
// with unparseable time strings is returned as-is; Slots treats it as
// degenerate and yields an empty list rather than raising an error, because
// configuration problems are never surfaced to the guest.
func (c Config) Normalize() Config {
	if c.StartTime == "" {
		c.StartTime = DefaultStartTime
	}
	if c.EndTime == "" {
		c.EndTime = DefaultEndTime
	}
	if c.IntervalMinutes <= 0 {
		c.IntervalMinutes = DefaultIntervalMinutes
	}
	if c.ErrorMessage == "" {
		c.ErrorMessage = DefaultErrorMessage
	}
	return c
}

// ParseTimeOfDay converts "HH:MM" into minutes from midnight.
func ParseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatTimeOfDay converts minutes from midnight back into "HH:MM".
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Slots generates the ordered list of bookable "HH:MM" values for a config.
// The accumulator starts at StartTime and advances by IntervalMinutes until
// the next value would pass EndTime.  The result is strictly increasing and
// never contains a value greater than EndTime; when the interval does not
// divide the window evenly the last slot is simply the largest value that
// still fits.  StartTime after EndTime yields an empty list.
func Slots(cfg Config) []string {
	cfg = cfg.Normalize()
	start, err := ParseTimeOfDay(cfg.StartTime)
	if err != nil {
		return nil
	}
	end, err := ParseTimeOfDay(cfg.EndTime)
	if err != nil {
		return nil
	}
	if start > end {
		return nil
	}
	slots := make([]string, 0, (end-start)/cfg.IntervalMinutes+1)
	for at := start; at <= end; at += cfg.IntervalMinutes {
		slots = append(slots, FormatTimeOfDay(at))
	}
	return slots
}

// HasSlot reports whether value is one of the slots generated for cfg.
func HasSlot(cfg Config, value string) bool {
	for _, s := range Slots(cfg) {
		if s == value {
			return true
		}
	}
	return false
}
