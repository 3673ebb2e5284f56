package postgres

import (
	"context"
	"errors"
	"fmt"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IdentityRepository implements repository.IdentityDB on PostgreSQL
type IdentityRepository struct {
	pool *pgxpool.Pool
}

// NewIdentityRepository creates a new IdentityRepository instance
func NewIdentityRepository(pool *pgxpool.Pool) *IdentityRepository {
	return &IdentityRepository{pool: pool}
}

// CreateUser persists a new user. The unique index on email turns a duplicate
// registration into ErrDuplicateEmail.
func (r *IdentityRepository) CreateUser(ctx context.Context, name, email, passwordHash string, role model.Role) (model.User, error) {
	query := `
        INSERT INTO users (name, email, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING user_id
    `
	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := r.pool.QueryRow(ctx, query, name, email, passwordHash, string(role)).Scan(&user.UserID); err != nil {
		return model.User{}, fmt.Errorf("repository: create user: %w", classify(err))
	}

	return user, nil
}

// GetUserByEmail looks up a user by exact email match, including the password
// hash so the service layer can verify credentials.
func (r *IdentityRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query := `
        SELECT user_id, name, email, password_hash, role
        FROM users
        WHERE email = $1
    `
	var user model.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("repository: get user by email: %w", auctionerrors.ErrNotFound)
		}
		return model.User{}, fmt.Errorf("repository: get user by email: %w", classify(err))
	}

	return user, nil
}

// GetUserByID returns a user by identifier
func (r *IdentityRepository) GetUserByID(ctx context.Context, userID int64) (model.User, error) {
	query := `
        SELECT user_id, name, email, password_hash, role
        FROM users
        WHERE user_id = $1
    `
	var user model.User
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("repository: get user %d: %w", userID, auctionerrors.ErrNotFound)
		}
		return model.User{}, fmt.Errorf("repository: get user %d: %w", userID, classify(err))
	}

	return user, nil
}
