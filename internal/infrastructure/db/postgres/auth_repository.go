package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventhub/event-platform/internal/core/domain"
)

// AuthRepository implements ports.AuthRepository on Postgres. The users table
// enforces email uniqueness; a violation surfaces as domain.ErrUserExists.
type AuthRepository struct {
	pool *pgxpool.Pool
}

func NewAuthRepository(pool *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{pool: pool}
}

func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const stmt = `
INSERT INTO users (name, email, password_hash, role, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	created := *user
	err := r.pool.QueryRow(ctx, stmt,
		user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
SELECT id, name, email, password_hash, role, created_at
FROM users
WHERE email = $1`

	var user domain.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
