package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/davolio/osteria-reservations/internal/model"
)

// ReservationRepo is the append-only store behind the booking widget plus
// the read/update surface the admin panel needs.  The public submission
// path only ever calls Create; listing and status transitions are
// staff-side operations.
type ReservationRepo struct{ db *sql.DB }

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle for callers that need transactions.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

// Create appends a reservation row and fills in its generated ID.  The row
// is written exactly as submitted; nothing is normalized here.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservations
        (name, phone, party_size, notes, consent_given, res_date, res_time, status, created_at_ms)
        VALUES (?,?,?,?,?,?,?,?,?)`
	out, err := r.db.ExecContext(ctx, q,
		res.Name, res.Phone, res.PartySize, res.Notes, res.ConsentGiven,
		res.Date, res.Time, res.Status, res.CreatedAt)
	if err != nil {
		return err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	return nil
}

// GetByID fetches a single reservation.  Returns ErrReservationNotFound
// when the ID does not exist.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (model.Reservation, error) {
	const q = `SELECT id, name, phone, party_size, notes, consent_given,
        res_date, res_time, status, created_at_ms
        FROM reservations WHERE id = ? LIMIT 1`
	var res model.Reservation
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&res.ID, &res.Name, &res.Phone, &res.PartySize, &res.Notes,
		&res.ConsentGiven, &res.Date, &res.Time, &res.Status, &res.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Reservation{}, ErrReservationNotFound
	}
	return res, err
}

// List returns reservations newest-first, optionally filtered by status.
// An empty status returns everything.
func (r *ReservationRepo) List(ctx context.Context, status string) ([]model.Reservation, error) {
	q := `SELECT id, name, phone, party_size, notes, consent_given,
        res_date, res_time, status, created_at_ms FROM reservations`
	args := []any{}
	if status != "" {
		q += ` WHERE status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY created_at_ms DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Reservation{}
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(
			&res.ID, &res.Name, &res.Phone, &res.PartySize, &res.Notes,
			&res.ConsentGiven, &res.Date, &res.Time, &res.Status, &res.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, rows.Err()
}

// UpdateStatus moves a pending reservation to confirmed or cancelled.  It
// returns ErrReservationNotFound when the ID does not exist and
// ErrInvalidTransition when the row exists but already left pending; the
// guarded UPDATE keeps the check-and-set atomic without a transaction.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	const q = `UPDATE reservations SET status = ? WHERE id = ? AND status = ?`
	out, err := r.db.ExecContext(ctx, q, status, id, model.ReservationPending)
	if err != nil {
		return err
	}
	n, err := out.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish missing row from a finished one.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrInvalidTransition
	}
	return nil
}
