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

var ErrFeedbackNotFound = errors.New("feedback not found")

type FeedbackRepo struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepo(pool *pgxpool.Pool) *FeedbackRepo {
	return &FeedbackRepo{pool: pool}
}

const feedbackColumns = `
	id,
	user_id,
	type,
	title,
	description,
	status,
	created_at,
	updated_at`

func (r *FeedbackRepo) Create(ctx context.Context, fb model.Feedback) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is not initialized")
	}

	const query = `
INSERT INTO feedback (
	id,
	user_id,
	type,
	title,
	description,
	status,
	created_at,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

	if _, err := r.pool.Exec(ctx, query,
		fb.ID,
		fb.UserID,
		fb.Type,
		fb.Title,
		fb.Description,
		fb.Status,
		fb.CreatedAt.UTC(),
		fb.UpdatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}

	return nil
}

func (r *FeedbackRepo) List(ctx context.Context, status string, limit int) ([]model.Feedback, error) {
	if r.pool == nil {
		return nil, nil
	}

	query := `SELECT` + feedbackColumns + ` FROM feedback`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	return collectFeedback(rows)
}

func (r *FeedbackRepo) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is not initialized")
	}

	const query = `UPDATE feedback SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status, at.UTC())
	if err != nil {
		return fmt.Errorf("update feedback status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

func (r *FeedbackRepo) ListNewSince(ctx context.Context, since time.Time) ([]model.Feedback, error) {
	if r.pool == nil {
		return nil, nil
	}

	query := `SELECT` + feedbackColumns + ` FROM feedback WHERE status = 'new' AND created_at > $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("list new feedback: %w", err)
	}
	defer rows.Close()

	return collectFeedback(rows)
}

func (r *FeedbackRepo) DeleteClosedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if r.pool == nil {
		return 0, nil
	}

	const query = `DELETE FROM feedback WHERE status = 'closed' AND updated_at < $1`

	tag, err := r.pool.Exec(ctx, query, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete closed feedback: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *FeedbackRepo) Delete(ctx context.Context, id string) error {
	if r.pool == nil {
		return ErrFeedbackNotFound
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

func (r *FeedbackRepo) DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID string) error {
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM feedback WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete feedback for user: %w", err)
	}

	return nil
}

func collectFeedback(rows pgx.Rows) ([]model.Feedback, error) {
	var items []model.Feedback
	for rows.Next() {
		var fb model.Feedback
		err := rows.Scan(
			&fb.ID,
			&fb.UserID,
			&fb.Type,
			&fb.Title,
			&fb.Description,
			&fb.Status,
			&fb.CreatedAt,
			&fb.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		items = append(items, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}

	return items, nil
}
