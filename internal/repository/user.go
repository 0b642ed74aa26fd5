package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sumire/commerce/internal/domain"
)

// UserRepository handles user data access operations.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user. Returns domain.ErrConflict when the
// username or email is already taken.
func (r *UserRepository) Create(ctx context.Context, username, email string) (*domain.User, error) {
	var taken bool
	err := r.db.GetContext(ctx, &taken,
		r.db.Rebind(`SELECT EXISTS (SELECT 1 FROM users WHERE username = ? OR email = ?)`),
		username, email)
	if err != nil {
		return nil, fmt.Errorf("check user uniqueness: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: username or email already in use", domain.ErrConflict)
	}

	var user domain.User
	err = r.db.QueryRowxContext(ctx,
		r.db.Rebind(`INSERT INTO users (username, email, created_at)
		 VALUES (?, ?, ?)
		 RETURNING id, username, email, created_at`),
		username, email, time.Now().UTC(),
	).StructScan(&user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// FindByID retrieves a user by their ID.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		r.db.Rebind(`SELECT id, username, email, created_at FROM users WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find user by id %d: %w", id, err)
	}
	return &user, nil
}

// List retrieves all users ordered by ID.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	err := r.db.SelectContext(ctx, &users,
		`SELECT id, username, email, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Delete removes a user. Returns whether a record existed.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM users WHERE id = ?`), id)
	if err != nil {
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}
	return n > 0, nil
}
