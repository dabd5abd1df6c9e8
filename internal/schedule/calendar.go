package schedule

import (
	"fmt"
	"time"
)

// Date is a concrete calendar day.  It exists so that grid math and past-day
// checks operate on plain integers instead of time.Time values that drag a
// location along with them.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1..12
	Day   int `json:"day"`
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// String renders the date as "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Today derives a Date from a wall-clock instant.  Callers inject the
// instant so tests can pin the current day.
func Today(now time.Time) Date {
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

// DayCell is one selectable day in the month grid.
type DayCell struct {
	Day    int  `json:"day"`
	IsPast bool `json:"is_past"`
}

// Grid is the complete render model for one month of the date picker:
// LeadingBlanks empty cells pad the first week so day 1 lands on its
// weekday column (Monday-first), followed by one DayCell per day.
type Grid struct {
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	LeadingBlanks int       `json:"leading_blanks"`
	Days          []DayCell `json:"days"`
}

// DaysInMonth returns the day count of a month, with the standard
// leap-year rule for February.
func DaysInMonth(year, month int) int {
	switch time.Month(month) {
	case time.February:
		if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// weekdayOfFirst returns the weekday index of day 1 remapped so that
// Monday = 0 and Sunday = 6.
func weekdayOfFirst(year, month int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return (int(first.Weekday()) + 6) % 7
}

// MonthGrid builds the grid for a month.  A day is past when it falls
// strictly before today; today itself is always selectable.
func MonthGrid(year, month int, today Date) Grid {
	total := DaysInMonth(year, month)
	g := Grid{
		Year:          year,
		Month:         month,
		LeadingBlanks: weekdayOfFirst(year, month),
		Days:          make([]DayCell, 0, total),
	}
	for day := 1; day <= total; day++ {
		cell := Date{Year: year, Month: month, Day: day}
		g.Days = append(g.Days, DayCell{Day: day, IsPast: cell.Before(today)})
	}
	return g
}

// AdvanceMonth moves a year/month pair by delta months in either direction,
// rolling over year boundaries.  There is no bound on how far navigation
// may go.
func AdvanceMonth(year, month, delta int) (int, int) {
	idx := year*12 + (month - 1) + delta
	y := idx / 12
	m := idx%12 + 1
	if idx < 0 && idx%12 != 0 {
		y--
		m = idx%12 + 13
	}
	return y, m
}
