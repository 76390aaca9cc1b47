package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// UpsertBySubject creates the user row on first sign-in and refreshes the
// email and full name on every later one. The generated id is only used
// when the row is inserted.
func (r *UserRepo) UpsertBySubject(ctx context.Context, id, subject, email, fullName string, at time.Time) (model.User, error) {
	if r.pool == nil {
		return model.User{}, fmt.Errorf("postgres pool is not initialized")
	}

	const query = `
INSERT INTO users (
	id,
	oauth_subject,
	email,
	full_name,
	role,
	created_at,
	updated_at
) VALUES ($1, $2, $3, $4, 'user', $5, $5)
ON CONFLICT (oauth_subject) DO UPDATE SET
	email = EXCLUDED.email,
	full_name = EXCLUDED.full_name,
	updated_at = EXCLUDED.updated_at
RETURNING id, oauth_subject, email, full_name, role, created_at, updated_at
`

	var u model.User
	err := r.pool.QueryRow(ctx, query, id, subject, email, fullName, at.UTC()).Scan(
		&u.ID,
		&u.OAuthSubject,
		&u.Email,
		&u.FullName,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("upsert user by subject: %w", err)
	}

	return u, nil
}

func (r *UserRepo) Get(ctx context.Context, id string) (model.User, error) {
	if r.pool == nil {
		return model.User{}, ErrUserNotFound
	}

	const query = `
SELECT id, oauth_subject, email, full_name, role, created_at, updated_at
FROM users
WHERE id = $1
`

	var u model.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.OAuthSubject,
		&u.Email,
		&u.FullName,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}

	return u, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id, fullName string, at time.Time) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is not initialized")
	}

	const query = `UPDATE users SET full_name = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, fullName, at.UTC())
	if err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *UserRepo) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
