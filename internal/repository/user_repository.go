package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/meeplehouse/cafe-reservation/internal/model"
	"github.com/meeplehouse/cafe-reservation/internal/utils"
)

// ErrEmailExists is returned when registering with an email that is
// already taken.
var ErrEmailExists = errors.New("email already exists")

// UserRepo manages the users table, including the point balance that
// payments deduct from and top-ups add to.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo returns a new UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = `id, email, name, password_hash, role, points, is_active, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role,
		&u.Points, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create inserts a user with a bcrypt-hashed password and returns its ID.
func (r *UserRepo) Create(ctx context.Context, email, name, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, name, password_hash, role) VALUES (?,?,?,?)",
		email, name, hash, role)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// GetPoints returns the user's current point balance.
func (r *UserRepo) GetPoints(ctx context.Context, id uint64) (float64, error) {
	var points float64
	err := r.DB.QueryRowContext(ctx,
		"SELECT points FROM users WHERE id=? LIMIT 1", id).Scan(&points)
	return points, err
}

// GetPointsForUpdateTx reads the balance with a row lock inside the
// caller's transaction so the affordability check and the deduction
// see the same value.
func (r *UserRepo) GetPointsForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (float64, error) {
	var points float64
	err := tx.QueryRowContext(ctx,
		"SELECT points FROM users WHERE id=? FOR UPDATE", id).Scan(&points)
	return points, err
}

// DeductPointsTx subtracts amount from the user's balance inside the
// caller's transaction.  The WHERE guard keeps the balance
// non-negative even if the caller's check raced; a zero-row update is
// reported as ErrInsufficientPoints.
func (r *UserRepo) DeductPointsTx(ctx context.Context, tx *sql.Tx, id uint64, amount float64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE users SET points = points - ? WHERE id=? AND points >= ?",
		amount, id, amount)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInsufficientPoints
	}
	return nil
}

// AddPoints credits the user's balance.  Used by the top-up flow.
func (r *UserRepo) AddPoints(ctx context.Context, id uint64, amount float64) (float64, error) {
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE users SET points = points + ? WHERE id=?", amount, id); err != nil {
		return 0, err
	}
	return r.GetPoints(ctx, id)
}
