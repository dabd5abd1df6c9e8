// Package repository provides thin data-access structs over *sql.DB and the
// sentinel errors shared across them.  Sentinels let handlers translate
// storage failures into precise HTTP responses with errors.Is instead of
// string matching.
package repository

import "errors"

// ErrReservationNotFound is returned when a reservation ID does not exist.
// Handlers translate this into HTTP 404.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrInvalidTransition is returned when a status update is requested on a
// reservation that is no longer pending.  Handlers translate this into
// HTTP 409.
var ErrInvalidTransition = errors.New("reservation is not pending")
