package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/meeplehouse/cafe-reservation/internal/booking"
	"github.com/meeplehouse/cafe-reservation/internal/model"
	"github.com/meeplehouse/cafe-reservation/internal/queue"
	"github.com/meeplehouse/cafe-reservation/internal/repository"
	queue_publisher "github.com/meeplehouse/cafe-reservation/internal/service"
)

// PaymentHandler settles reservations from the user's point balance.
// The whole confirmation runs in one transaction: the reservation,
// any existing payment and the balance are read under row locks, the
// reconciler decides, and only then are the payment inserted, the
// points deducted and the reservation flipped to confirmed.
type PaymentHandler struct {
	Reservations *repository.ReservationRepo
	Payments     *repository.PaymentRepo
	Users        *repository.UserRepo
}

// NewPaymentHandler constructs a new PaymentHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewPaymentHandler(reservations *repository.ReservationRepo, payments *repository.PaymentRepo, users *repository.UserRepo) *PaymentHandler {
	if reservations == nil || payments == nil || users == nil {
		panic("nil repository passed to NewPaymentHandler")
	}
	return &PaymentHandler{Reservations: reservations, Payments: payments, Users: users}
}

type createPaymentReq struct {
	ReservationID uint64 `json:"booking_id"`
}

// paymentStatusOf maps reconciler refusals to HTTP statuses.
// AlreadyPaid is a conflict with existing state; the others leave the
// client to top up or re-inspect the reservation.
func paymentStatusOf(rule booking.PaymentRule) int {
	switch rule {
	case booking.ReservationNotFound:
		return http.StatusNotFound
	case booking.AlreadyPaid:
		return http.StatusConflict
	default:
		return http.StatusPaymentRequired
	}
}

// CreatePayment handles POST /v1/payments.  It charges the
// reservation's stored total against the caller's point balance.  A
// second confirmation for the same reservation answers 409 "already
// paid" and charges nothing; the unique key on payments.reservation_id
// backs the same guarantee at the DB level.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createPaymentReq
	if err := c.Bind(&req); err != nil || req.ReservationID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking_id is required"})
	}
	ctx := c.Request().Context()
	tx, err := h.Reservations.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var res *model.Reservation
	if r, err := h.Reservations.GetForUpdateTx(ctx, tx, req.ReservationID); err == nil {
		res = &r
	} else if !errors.Is(err, repository.ErrReservationNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch reservation"})
	}
	if res != nil && res.UserID != userID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var existing *model.Payment
	var balance float64
	if res != nil {
		if existing, err = h.Payments.GetByReservationTx(ctx, tx, res.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check existing payment"})
		}
		if balance, err = h.Users.GetPointsForUpdateTx(ctx, tx, userID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load point balance"})
		}
	}

	preq, perr := booking.ConfirmPayment(booking.Session{UserID: userID}, res, existing, balance)
	if perr != nil {
		return c.JSON(paymentStatusOf(perr.Rule), echo.Map{"error": perr.Message, "code": string(perr.Rule)})
	}

	payment := &model.Payment{
		UserID:        preq.UserID,
		ReservationID: preq.ReservationID,
		Amount:        preq.Amount,
		Method:        preq.Method,
		Status:        preq.Status,
	}
	if err := h.Payments.CreateTx(ctx, tx, payment); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "this reservation has already been paid", "code": string(booking.AlreadyPaid)})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create payment"})
	}
	if err := h.Users.DeductPointsTx(ctx, tx, userID, preq.Amount); err != nil {
		if errors.Is(err, repository.ErrInsufficientPoints) {
			return c.JSON(http.StatusPaymentRequired, echo.Map{"error": "not enough points to pay for this reservation", "code": string(booking.InsufficientPoints)})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to deduct points"})
	}
	if err := h.Reservations.UpdateStatusTx(ctx, tx, res.ID, model.ReservationConfirmed); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to confirm reservation"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	remaining := booking.Reconcile(balance, preq.Amount).Remaining

	// Best-effort notification; a broker hiccup never fails the payment.
	event := queue.PaymentConfirmedEvent{
		PaymentID:     payment.ID,
		ReservationID: res.ID,
		UserID:        userID,
		Amount:        payment.Amount,
		Method:        payment.Method,
		Remaining:     remaining,
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := queue_publisher.PublishPaymentConfirmed(ctx, event); err != nil {
		log.Printf("payment: publish confirmation event failed: %v", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"payment_id":       payment.ID,
		"amount":           payment.Amount,
		"status":           payment.Status,
		"remaining_points": remaining,
	})
}

// MyPayments handles GET /v1/payment/me.
func (h *PaymentHandler) MyPayments(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	payments, err := h.Payments.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load payments"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": payments})
}

// ListByUser handles GET /v1/payments/user/:id.  Users can only list
// their own payments.
func (h *PaymentHandler) ListByUser(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	pathUser, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	if pathUser != userID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	payments, err := h.Payments.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load payments"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": payments})
}
