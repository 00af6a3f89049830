package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/meeplehouse/cafe-reservation/internal/model"
)

// ErrBoardGameNotFound indicates that a board game was not located in the DB.
var ErrBoardGameNotFound = errors.New("board game not found")

// BoardGameRepo manages persistence for the game library.  Games are
// read-only reference data from the booking flow's perspective; the
// repo therefore exposes only lookups.
type BoardGameRepo struct {
	db *sql.DB
}

// NewBoardGameRepo returns a new BoardGameRepo bound to the given database.
func NewBoardGameRepo(db *sql.DB) *BoardGameRepo { return &BoardGameRepo{db: db} }

const boardGameColumns = `id, name, price_per_hour, min_player, max_player,
	duration_min, category, publisher, image, created_at, updated_at`

func scanBoardGame(row interface{ Scan(...any) error }) (model.BoardGame, error) {
	var g model.BoardGame
	var durationMin sql.NullInt32
	var category, publisher, image sql.NullString
	err := row.Scan(&g.ID, &g.Name, &g.PricePerHour, &g.MinPlayer, &g.MaxPlayer,
		&durationMin, &category, &publisher, &image, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return g, err
	}
	if durationMin.Valid {
		d := uint32(durationMin.Int32)
		g.DurationHint = &d
	}
	if category.Valid {
		v := category.String
		g.Category = &v
	}
	if publisher.Valid {
		v := publisher.String
		g.Publisher = &v
	}
	if image.Valid {
		v := image.String
		g.Image = &v
	}
	return g, nil
}

// List returns the whole game library ordered by name.
func (r *BoardGameRepo) List(ctx context.Context) ([]model.BoardGame, error) {
	const q = `SELECT ` + boardGameColumns + ` FROM board_games ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	games := make([]model.BoardGame, 0)
	for rows.Next() {
		g, err := scanBoardGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// GetByID returns a single game.  ErrBoardGameNotFound is returned
// when no row exists.
func (r *BoardGameRepo) GetByID(ctx context.Context, id uint64) (model.BoardGame, error) {
	const q = `SELECT ` + boardGameColumns + ` FROM board_games WHERE id = ?`
	g, err := scanBoardGame(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return g, ErrBoardGameNotFound
	}
	return g, err
}

// FindByName returns games whose name contains the given fragment,
// case-insensitively.  Backs the /boardgame/findname endpoint.
func (r *BoardGameRepo) FindByName(ctx context.Context, name string) ([]model.BoardGame, error) {
	const q = `SELECT ` + boardGameColumns + ` FROM board_games WHERE LOWER(name) LIKE ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q, "%"+strings.ToLower(strings.TrimSpace(name))+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	games := make([]model.BoardGame, 0)
	for rows.Next() {
		g, err := scanBoardGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}
