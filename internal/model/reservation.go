package model

// Reservation records one table booking submitted through the public
// widget.  Rows are appended with status "pending"; staff later move them
// to "confirmed" or "cancelled" from the admin panel.  The widget itself
// never reads a row back or mutates it.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – guest name as typed in the form.
//  Phone        – guest phone as typed (validated but not normalized).
//  PartySize    – party size as the guest typed it, kept as a string.
//  Notes        – optional free-text requests.
//  ConsentGiven – privacy-consent checkbox state at submission.
//  Date         – reservation day, "YYYY-MM-DD".
//  Time         – reservation time of day, "HH:MM".
//  Status       – pending | confirmed | cancelled.
//  CreatedAt    – submission instant in epoch milliseconds.
type Reservation struct {
	ID           uint64 // reservations.id
	Name         string // reservations.name
	Phone        string // reservations.phone
	PartySize    string // reservations.party_size
	Notes        string // reservations.notes
	ConsentGiven bool   // reservations.consent_given
	Date         string // reservations.res_date
	Time         string // reservations.res_time
	Status       string // reservations.status
	CreatedAt    int64  // reservations.created_at_ms
}

// Reservation status values.  Only the pending → confirmed and
// pending → cancelled transitions are performed by this service.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)
