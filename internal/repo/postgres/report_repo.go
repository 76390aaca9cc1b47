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

var ErrReportNotFound = errors.New("report not found")

type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

const reportColumns = `
	id,
	reporter_user_id,
	artist_id,
	reason,
	description,
	status,
	created_at,
	updated_at`

func (r *ReportRepo) Create(ctx context.Context, rep model.Report) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is not initialized")
	}

	const query = `
INSERT INTO reports (
	id,
	reporter_user_id,
	artist_id,
	reason,
	description,
	status,
	created_at,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

	if _, err := r.pool.Exec(ctx, query,
		rep.ID,
		rep.ReporterUserID,
		rep.ArtistID,
		rep.Reason,
		rep.Description,
		rep.Status,
		rep.CreatedAt.UTC(),
		rep.UpdatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	return nil
}

func (r *ReportRepo) Get(ctx context.Context, id string) (model.Report, error) {
	if r.pool == nil {
		return model.Report{}, ErrReportNotFound
	}

	query := `SELECT` + reportColumns + ` FROM reports WHERE id = $1`

	rep, err := scanReport(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Report{}, ErrReportNotFound
		}
		return model.Report{}, fmt.Errorf("get report: %w", err)
	}

	return rep, nil
}

// List returns reports newest first, optionally narrowed to one status.
func (r *ReportRepo) List(ctx context.Context, status string, limit int) ([]model.Report, error) {
	if r.pool == nil {
		return nil, nil
	}

	query := `SELECT` + reportColumns + ` FROM reports`
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
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	return collectReports(rows)
}

func (r *ReportRepo) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is not initialized")
	}

	const query = `UPDATE reports SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status, at.UTC())
	if err != nil {
		return fmt.Errorf("update report status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrReportNotFound
	}

	return nil
}

// ListPendingSince feeds the moderation notifier loop.
func (r *ReportRepo) ListPendingSince(ctx context.Context, since time.Time) ([]model.Report, error) {
	if r.pool == nil {
		return nil, nil
	}

	query := `SELECT` + reportColumns + ` FROM reports WHERE status = 'pending' AND created_at > $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("list pending reports: %w", err)
	}
	defer rows.Close()

	return collectReports(rows)
}

func (r *ReportRepo) DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if r.pool == nil {
		return 0, nil
	}

	const query = `
DELETE FROM reports
WHERE status IN ('resolved', 'dismissed') AND updated_at < $1
`

	tag, err := r.pool.Exec(ctx, query, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete resolved reports: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *ReportRepo) Delete(ctx context.Context, id string) error {
	if r.pool == nil {
		return ErrReportNotFound
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrReportNotFound
	}

	return nil
}

func (r *ReportRepo) DeleteAllForReporter(ctx context.Context, tx pgx.Tx, userID string) error {
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM reports WHERE reporter_user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete reports for reporter: %w", err)
	}

	return nil
}

func scanReport(row pgx.Row) (model.Report, error) {
	var rep model.Report
	err := row.Scan(
		&rep.ID,
		&rep.ReporterUserID,
		&rep.ArtistID,
		&rep.Reason,
		&rep.Description,
		&rep.Status,
		&rep.CreatedAt,
		&rep.UpdatedAt,
	)
	if err != nil {
		return model.Report{}, err
	}
	return rep, nil
}

func collectReports(rows pgx.Rows) ([]model.Report, error) {
	var reports []model.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}

	return reports, nil
}
