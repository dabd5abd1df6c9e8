package config

import "github.com/davolio/osteria-reservations/internal/schedule"

// LoadScheduleFallback builds the scheduling config used when no row has
// been saved in the settings store yet.  Each field can be overridden by
// environment variable; anything unset falls through to the compiled-in
// defaults via Normalize.  Configuration problems here are never fatal and
// never reach a guest.
func LoadScheduleFallback() schedule.Config {
	return schedule.Config{
		StartTime:       getenv("SCHEDULE_START_TIME", schedule.DefaultStartTime),
		EndTime:         getenv("SCHEDULE_END_TIME", schedule.DefaultEndTime),
		IntervalMinutes: atoi(getenv("SCHEDULE_INTERVAL_MINUTES", "15")),
		ErrorMessage:    getenv("SCHEDULE_ERROR_MESSAGE", ""),
	}.Normalize()
}
