package repository

import (
	"context"
	"database/sql"

	"github.com/davolio/osteria-reservations/internal/model"
)

// settingsRowID pins the single schedule_settings row; the table is a
// one-row key/value holder, not a collection.
const settingsRowID = 1

// SettingsRepo stores the widget's scheduling configuration.  Reads return
// sql.ErrNoRows when nothing was ever saved; callers fall back to the
// compiled-in defaults in that case.
type SettingsRepo struct{ db *sql.DB }

func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{db: db} }

// GetSchedule loads the stored scheduling config.
func (r *SettingsRepo) GetSchedule(ctx context.Context) (model.ScheduleSetting, error) {
	const q = `SELECT start_time, end_time, interval_minutes, error_message, updated_at
        FROM schedule_settings WHERE id = ? LIMIT 1`
	var s model.ScheduleSetting
	err := r.db.QueryRowContext(ctx, q, settingsRowID).Scan(
		&s.StartTime, &s.EndTime, &s.IntervalMinutes, &s.ErrorMessage, &s.UpdatedAt)
	return s, err
}

// UpsertSchedule replaces the stored scheduling config.
func (r *SettingsRepo) UpsertSchedule(ctx context.Context, s model.ScheduleSetting) error {
	const q = `INSERT INTO schedule_settings
        (id, start_time, end_time, interval_minutes, error_message, updated_at)
        VALUES (?,?,?,?,?,NOW())
        ON DUPLICATE KEY UPDATE
        start_time=VALUES(start_time), end_time=VALUES(end_time),
        interval_minutes=VALUES(interval_minutes), error_message=VALUES(error_message),
        updated_at=NOW()`
	_, err := r.db.ExecContext(ctx, q,
		settingsRowID, s.StartTime, s.EndTime, s.IntervalMinutes, s.ErrorMessage)
	return err
}
