package model

import "time"

// ScheduleSetting is the stored opening-hours configuration the widget
// reads its slots from.  A single row (keyed by ID 1) is kept in the
// `schedule_settings` table; staff edit it from the admin panel.  Missing
// or degenerate values are replaced with compiled-in defaults at read
// time, never surfaced to guests.
//
// Fields:
//  StartTime       – first bookable time of day, "HH:MM".
//  EndTime         – last bookable time of day, "HH:MM" (inclusive).
//  IntervalMinutes – minutes between consecutive slots.
//  ErrorMessage    – text shown to guests when a submission fails.
//  UpdatedAt       – timestamp of the last edit.
type ScheduleSetting struct {
	StartTime       string    // schedule_settings.start_time
	EndTime         string    // schedule_settings.end_time
	IntervalMinutes int       // schedule_settings.interval_minutes
	ErrorMessage    string    // schedule_settings.error_message
	UpdatedAt       time.Time // schedule_settings.updated_at
}
