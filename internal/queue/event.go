// Package queue defines message payloads exchanged over the message broker.
package queue

// PaymentConfirmedEvent is published when a reservation is settled
// from the user's point balance.  It carries enough information for
// downstream consumers to log, notify, or feed analytics without
// querying the primary database.
type PaymentConfirmedEvent struct {
	PaymentID     uint64  `json:"payment_id"`
	ReservationID uint64  `json:"reservation_id"`
	UserID        uint64  `json:"user_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Remaining     float64 `json:"remaining_points"`
	ConfirmedAt   string  `json:"confirmed_at"`
}
