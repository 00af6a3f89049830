package model

import "time"

// Payment status enumeration as stored in `payments.status`.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// PaymentMethodPoints is the only method the booking flow creates;
// a payment deducts the amount from the user's point balance.
const PaymentMethodPoints = "points"

// Payment is the settlement record for a reservation.  At most one
// payment exists per reservation (enforced by a unique key), and its
// presence is the authoritative "paid" signal regardless of the
// reservation's own status field.  Payments are immutable once
// created; only staff tooling may flip status afterwards.
//
// Fields:
//  ID            – primary key identifier.
//  UserID        – payer.
//  ReservationID – reservation being settled.
//  Amount        – points charged, equal to the reservation total.
//  Method        – settlement method, always "points" here.
//  Status        – pending, paid or failed.
//  PaidAt        – when the payment settled (nil while pending).
//  CreatedAt     – creation timestamp.
type Payment struct {
	ID            uint64     // payments.id
	UserID        uint64     // payments.user_id
	ReservationID uint64     // payments.reservation_id
	Amount        float64    // payments.amount
	Method        string     // payments.method
	Status        string     // payments.status
	PaidAt        *time.Time // payments.paid_at (nullable)
	CreatedAt     time.Time  // payments.created_at
}
