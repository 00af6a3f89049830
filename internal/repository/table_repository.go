package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/meeplehouse/cafe-reservation/internal/model"
)

// ErrTableNotFound indicates that a table was not located in the DB.
var ErrTableNotFound = errors.New("table not found")

// TableRepo manages persistence for the flat table collection.
type TableRepo struct {
	db *sql.DB
}

// NewTableRepo returns a new TableRepo bound to the given database.
func NewTableRepo(db *sql.DB) *TableRepo { return &TableRepo{db: db} }

const tableColumns = `id, number, capacity, image, created_at, updated_at`

func scanTable(row interface{ Scan(...any) error }) (model.Table, error) {
	var t model.Table
	var image sql.NullString
	err := row.Scan(&t.ID, &t.Number, &t.Capacity, &image, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return t, err
	}
	if image.Valid {
		v := image.String
		t.Image = &v
	}
	return t, nil
}

// List returns all tables ordered by their label.
func (r *TableRepo) List(ctx context.Context) ([]model.Table, error) {
	const q = `SELECT ` + tableColumns + ` FROM tables ORDER BY number`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tables := make([]model.Table, 0)
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

// GetByID returns a single table.  ErrTableNotFound is returned when
// no row exists.
func (r *TableRepo) GetByID(ctx context.Context, id uint64) (model.Table, error) {
	const q = `SELECT ` + tableColumns + ` FROM tables WHERE id = ?`
	t, err := scanTable(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return t, ErrTableNotFound
	}
	return t, err
}
