package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/meeplehouse/cafe-reservation/internal/model"
)

// ErrReservationNotFound indicates that a reservation was not located in the DB.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepo provides CRUD operations for reservations.  A
// reservation binds one game, one room and one table to a time
// window for a single user; the derived duration and total computed
// at submission time are stored alongside the raw inputs.  All
// timestamp fields are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying sql.DB so handlers can begin transactions
// spanning multiple repositories.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

const reservationColumns = `id, user_id, board_game_id, room_id, table_id,
	start_time, end_time, amount_player, duration_hours, total_price, status,
	created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }) (model.Reservation, error) {
	var m model.Reservation
	err := row.Scan(&m.ID, &m.UserID, &m.BoardGameID, &m.RoomID, &m.TableID,
		&m.StartTime, &m.EndTime, &m.AmountPlayer, &m.DurationHours, &m.TotalPrice,
		&m.Status, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// CreateTx inserts a new reservation within the scope of an existing
// transaction and populates the generated ID and DB-default fields on
// the provided record.  The caller must commit or roll back the
// transaction.  Status should be a valid enumeration (pending,
// confirmed, cancelled, done).
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const q = `INSERT INTO reservations
		(user_id, board_game_id, room_id, table_id, start_time, end_time,
		 amount_player, duration_hours, total_price, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q, res.UserID, res.BoardGameID, res.RoomID,
		res.TableID, res.StartTime.UTC(), res.EndTime.UTC(), res.AmountPlayer,
		res.DurationHours, res.TotalPrice, res.Status)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	// Query back the full row to populate timestamps and defaults.
	const sel = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	*res, err = scanReservation(tx.QueryRowContext(ctx, sel, res.ID))
	return err
}

// GetByID returns a reservation by id.  ErrReservationNotFound is
// returned when no row exists.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	m, err := scanReservation(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return m, ErrReservationNotFound
	}
	return m, err
}

// GetForUpdateTx loads a reservation with a row lock inside the
// caller's transaction.  The payment flow uses it so that the status
// check and the later status flip see consistent state.
func (r *ReservationRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ? FOR UPDATE`
	m, err := scanReservation(tx.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return m, ErrReservationNotFound
	}
	return m, err
}

// UpdateStatusTx flips a reservation's status inside the caller's
// transaction.  It does not validate the transition; callers enforce
// the state machine.
func (r *ReservationRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE reservations SET status = ? WHERE id = ?`, status, id)
	return err
}

// ReservationDetail is a reservation joined with the names of the
// resources it references, returned by ListByUser for display.
type ReservationDetail struct {
	ID            uint64  `json:"id"`
	BoardGameID   uint64  `json:"board_game_id"`
	BoardGameName string  `json:"board_game_name"`
	RoomID        uint64  `json:"room_id"`
	RoomName      string  `json:"room_name"`
	TableID       uint64  `json:"table_id"`
	TableNumber   string  `json:"table_number"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	AmountPlayer  uint32  `json:"amount_player"`
	DurationHours float64 `json:"duration"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
}

// ListByUser returns all reservations for the given user with game,
// room and table names resolved, newest first.  When no reservations
// exist, an empty slice is returned.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID uint64) ([]ReservationDetail, error) {
	const q = `SELECT r.id, r.board_game_id, g.name, r.room_id, rm.name,
	                  r.table_id, t.number, r.start_time, r.end_time,
	                  r.amount_player, r.duration_hours, r.total_price, r.status
	           FROM reservations r
	           JOIN board_games g ON g.id = r.board_game_id
	           JOIN rooms rm ON rm.id = r.room_id
	           JOIN tables t ON t.id = r.table_id
	           WHERE r.user_id = ?
	           ORDER BY r.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]ReservationDetail, 0)
	for rows.Next() {
		var d ReservationDetail
		var start, end time.Time
		if err := rows.Scan(&d.ID, &d.BoardGameID, &d.BoardGameName,
			&d.RoomID, &d.RoomName, &d.TableID, &d.TableNumber,
			&start, &end, &d.AmountPlayer, &d.DurationHours, &d.TotalPrice,
			&d.Status); err != nil {
			return nil, err
		}
		d.StartTime = start.UTC().Format(time.RFC3339)
		d.EndTime = end.UTC().Format(time.RFC3339)
		details = append(details, d)
	}
	return details, rows.Err()
}
