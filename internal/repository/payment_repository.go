package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/meeplehouse/cafe-reservation/internal/model"
)

// PaymentRepo provides access to the payments table.  A reservation
// has at most one payment (unique key on reservation_id); its
// presence is the authoritative paid signal.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo returns a new PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

const paymentColumns = `id, user_id, reservation_id, amount, method, status, paid_at, created_at`

func scanPayment(row interface{ Scan(...any) error }) (model.Payment, error) {
	var p model.Payment
	var paidAt sql.NullTime
	err := row.Scan(&p.ID, &p.UserID, &p.ReservationID, &p.Amount, &p.Method,
		&p.Status, &paidAt, &p.CreatedAt)
	if err != nil {
		return p, err
	}
	if paidAt.Valid {
		t := paidAt.Time
		p.PaidAt = &t
	}
	return p, nil
}

// CreateTx inserts a payment inside the caller's transaction and
// populates the generated ID and defaults on the record.  The unique
// key on reservation_id makes a duplicate insert fail; that failure
// is surfaced as ErrConflict so handlers can answer "already paid".
func (r *PaymentRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *model.Payment) error {
	const q = `INSERT INTO payments (user_id, reservation_id, amount, method, status, paid_at)
	           VALUES (?, ?, ?, ?, ?, UTC_TIMESTAMP())`
	result, err := tx.ExecContext(ctx, q, p.UserID, p.ReservationID, p.Amount, p.Method, p.Status)
	if err != nil {
		// 1062 = duplicate entry on the reservation_id unique key.
		if strings.Contains(err.Error(), "1062") {
			return ErrConflict
		}
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	const sel = `SELECT ` + paymentColumns + ` FROM payments WHERE id = ?`
	*p, err = scanPayment(tx.QueryRowContext(ctx, sel, p.ID))
	return err
}

// GetByReservation returns the payment recorded for a reservation, or
// (nil, nil) when none exists yet.
func (r *PaymentRepo) GetByReservation(ctx context.Context, reservationID uint64) (*model.Payment, error) {
	const q = `SELECT ` + paymentColumns + ` FROM payments WHERE reservation_id = ? LIMIT 1`
	p, err := scanPayment(r.db.QueryRowContext(ctx, q, reservationID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByReservationTx is GetByReservation inside the caller's
// transaction, with a row lock so a concurrent confirmation cannot
// slip between the check and the insert.
func (r *PaymentRepo) GetByReservationTx(ctx context.Context, tx *sql.Tx, reservationID uint64) (*model.Payment, error) {
	const q = `SELECT ` + paymentColumns + ` FROM payments WHERE reservation_id = ? LIMIT 1 FOR UPDATE`
	p, err := scanPayment(tx.QueryRowContext(ctx, q, reservationID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByUser returns all payments made by the given user, newest first.
func (r *PaymentRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Payment, error) {
	const q = `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	payments := make([]model.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
