package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/meeplehouse/cafe-reservation/internal/model"
)

// ErrRoomNotFound indicates that a room was not located in the DB.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepo manages persistence for rooms and their table-id sets.
// The set lives in the `room_tables` table so that tables remain a
// flat collection referenced weakly by id.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *RoomRepo) DB() *sql.DB { return r.db }

func scanRoom(row interface{ Scan(...any) error }) (model.Room, error) {
	var m model.Room
	var image sql.NullString
	err := row.Scan(&m.ID, &m.Name, &m.Capacity, &m.PricePerHour, &m.Status,
		&image, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return m, err
	}
	if image.Valid {
		v := image.String
		m.Image = &v
	}
	return m, nil
}

const roomColumns = `id, name, capacity, price_per_hour, status, image, created_at, updated_at`

// List returns all rooms with their table-id sets populated.  Rooms
// are ordered by name; table ids keep their declared position order.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	roomList := make([]model.Room, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		m, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		index[m.ID] = len(roomList)
		roomList = append(roomList, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(roomList) == 0 {
		return roomList, nil
	}
	// Populate table ids for all rooms in a single query.
	const tq = `SELECT room_id, table_id FROM room_tables ORDER BY room_id, position`
	trows, err := r.db.QueryContext(ctx, tq)
	if err != nil {
		return nil, err
	}
	defer trows.Close()
	for trows.Next() {
		var roomID, tableID uint64
		if err := trows.Scan(&roomID, &tableID); err != nil {
			return nil, err
		}
		if i, ok := index[roomID]; ok {
			roomList[i].TableIDs = append(roomList[i].TableIDs, tableID)
		}
	}
	return roomList, trows.Err()
}

// GetByID returns a single room with its table-id set.  It returns
// ErrRoomNotFound when the room does not exist.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
	m, err := scanRoom(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return m, ErrRoomNotFound
	}
	if err != nil {
		return m, err
	}
	const tq = `SELECT table_id FROM room_tables WHERE room_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, tq, id)
	if err != nil {
		return m, err
	}
	defer rows.Close()
	for rows.Next() {
		var tableID uint64
		if err := rows.Scan(&tableID); err != nil {
			return m, err
		}
		m.TableIDs = append(m.TableIDs, tableID)
	}
	return m, rows.Err()
}

// FindByName returns rooms whose name contains the given fragment,
// case-insensitively, without their table sets (the list view does
// not need them).
func (r *RoomRepo) FindByName(ctx context.Context, name string) ([]model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE LOWER(name) LIKE ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q, "%"+strings.ToLower(strings.TrimSpace(name))+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	roomList := make([]model.Room, 0)
	for rows.Next() {
		m, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		roomList = append(roomList, m)
	}
	return roomList, rows.Err()
}

// GetStatusTx reads a room's status with a row lock inside the
// caller's transaction.  The booking flow uses it to re-check
// availability at submission time.
func (r *RoomRepo) GetStatusTx(ctx context.Context, tx *sql.Tx, id uint64) (string, error) {
	var status string
	err := tx.QueryRowContext(ctx, `SELECT status FROM rooms WHERE id = ? FOR UPDATE`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrRoomNotFound
	}
	return status, err
}
