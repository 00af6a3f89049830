package booking

import "github.com/meeplehouse/cafe-reservation/internal/model"

// PaymentRule identifies why a payment confirmation was refused.
type PaymentRule string

const (
	InsufficientPoints  PaymentRule = "insufficient_points"
	AlreadyPaid         PaymentRule = "already_paid"
	ReservationNotFound PaymentRule = "reservation_not_found"
)

// PaymentError is a refused confirmation.  AlreadyPaid and
// InsufficientPoints should disable the confirm control rather than
// allow a retry loop.
type PaymentError struct {
	Rule    PaymentRule
	Message string
}

func (e *PaymentError) Error() string { return e.Message }

// Affordability is the reconciliation of a reservation total against
// a point balance.  Remaining is computed even when negative so the
// shortfall can be shown; submission is blocked when Enough is false.
type Affordability struct {
	Enough    bool
	Remaining float64
}

// Reconcile checks whether the balance covers the total.
func Reconcile(balance, total float64) Affordability {
	return Affordability{
		Enough:    balance >= total,
		Remaining: balance - total,
	}
}

// PaymentRequest is the record created to settle a reservation.  It
// is created exactly once per reservation; amount equals the
// reservation's total price.
type PaymentRequest struct {
	UserID        uint64  `json:"user_id"`
	ReservationID uint64  `json:"booking_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
}

// ConfirmPayment decides whether the reservation can be paid from the
// balance and builds the payment request.  existing is the payment
// already recorded for this reservation, if any: confirming a second
// time is a no-op surfaced as AlreadyPaid, never a double charge.
func ConfirmPayment(sess Session, res *model.Reservation, existing *model.Payment, balance float64) (*PaymentRequest, *PaymentError) {
	if res == nil {
		return nil, &PaymentError{ReservationNotFound, "reservation not found"}
	}
	if existing != nil {
		return nil, &PaymentError{AlreadyPaid, "this reservation has already been paid"}
	}
	if aff := Reconcile(balance, res.TotalPrice); !aff.Enough {
		return nil, &PaymentError{InsufficientPoints, "not enough points to pay for this reservation"}
	}
	return &PaymentRequest{
		UserID:        sess.UserID,
		ReservationID: res.ID,
		Amount:        res.TotalPrice,
		Method:        model.PaymentMethodPoints,
		Status:        model.PaymentPaid,
	}, nil
}
