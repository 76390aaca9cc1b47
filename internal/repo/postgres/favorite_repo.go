package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepo struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepo(pool *pgxpool.Pool) *FavoriteRepo {
	return &FavoriteRepo{pool: pool}
}

// Add is idempotent; favoriting an already-favorited artist is a no-op.
func (r *FavoriteRepo) Add(ctx context.Context, userID, artistID string) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is not initialized")
	}

	const query = `
INSERT INTO favorites (user_id, artist_id, created_at)
VALUES ($1, $2, NOW())
ON CONFLICT (user_id, artist_id) DO NOTHING
`

	if _, err := r.pool.Exec(ctx, query, userID, artistID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}

	return nil
}

func (r *FavoriteRepo) Remove(ctx context.Context, userID, artistID string) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is not initialized")
	}

	const query = `DELETE FROM favorites WHERE user_id = $1 AND artist_id = $2`

	if _, err := r.pool.Exec(ctx, query, userID, artistID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	return nil
}

func (r *FavoriteRepo) ListArtistIDs(ctx context.Context, userID string) ([]string, error) {
	if r.pool == nil {
		return nil, nil
	}

	const query = `
SELECT artist_id FROM favorites WHERE user_id = $1 ORDER BY created_at DESC
`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite artist ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite artist id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}

	return ids, nil
}

func (r *FavoriteRepo) DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID string) error {
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete favorites for user: %w", err)
	}

	return nil
}

func (r *FavoriteRepo) DeleteAllForArtists(ctx context.Context, tx pgx.Tx, artistIDs []string) error {
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}
	if len(artistIDs) == 0 {
		return nil
	}

	if _, err := tx.Exec(ctx, `DELETE FROM favorites WHERE artist_id = ANY($1)`, artistIDs); err != nil {
		return fmt.Errorf("delete favorites for artists: %w", err)
	}

	return nil
}
