package booking

import (
	"testing"

	"github.com/meeplehouse/cafe-reservation/internal/model"
)

func TestReconcile(t *testing.T) {
	if aff := Reconcile(1000, 625); !aff.Enough || !almostEqual(aff.Remaining, 375) {
		t.Fatalf("Reconcile(1000, 625) = %+v", aff)
	}
	// Exact balance is enough and leaves zero.
	if aff := Reconcile(625, 625); !aff.Enough || aff.Remaining != 0 {
		t.Fatalf("Reconcile(625, 625) = %+v", aff)
	}
	// Shortfall is still computed for display.
	if aff := Reconcile(500, 625); aff.Enough || !almostEqual(aff.Remaining, -125) {
		t.Fatalf("Reconcile(500, 625) = %+v", aff)
	}
}

func TestConfirmPaymentHappyPath(t *testing.T) {
	res := &model.Reservation{ID: 42, UserID: 7, TotalPrice: 625, Status: model.ReservationPending}
	req, perr := ConfirmPayment(Session{UserID: 7}, res, nil, 625)
	if perr != nil {
		t.Fatalf("ConfirmPayment: %v", perr)
	}
	if req.ReservationID != 42 || req.UserID != 7 {
		t.Fatalf("request ids wrong: %+v", req)
	}
	if req.Amount != 625 || req.Method != model.PaymentMethodPoints || req.Status != model.PaymentPaid {
		t.Fatalf("request fields wrong: %+v", req)
	}
}

func TestConfirmPaymentGuards(t *testing.T) {
	res := &model.Reservation{ID: 42, TotalPrice: 625}

	if _, perr := ConfirmPayment(Session{UserID: 7}, nil, nil, 1000); perr == nil || perr.Rule != ReservationNotFound {
		t.Fatalf("rule = %v, want ReservationNotFound", perr)
	}

	// A second confirmation after one succeeded is AlreadyPaid, never a
	// second charge.
	existing := &model.Payment{ID: 1, ReservationID: 42, Status: model.PaymentPaid}
	if _, perr := ConfirmPayment(Session{UserID: 7}, res, existing, 1000); perr == nil || perr.Rule != AlreadyPaid {
		t.Fatalf("rule = %v, want AlreadyPaid", perr)
	}

	if _, perr := ConfirmPayment(Session{UserID: 7}, res, nil, 624.9); perr == nil || perr.Rule != InsufficientPoints {
		t.Fatalf("rule = %v, want InsufficientPoints", perr)
	}
}
