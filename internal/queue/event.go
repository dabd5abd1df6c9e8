// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published whenever the widget accepts a
// submission.  It carries enough for downstream consumers (notification
// mails, the kitchen dashboard, analytics) without querying the primary
// database.  PartySize stays the string the guest typed.
type ReservationCreatedEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	PartySize     string `json:"party_size"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}
