package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/provhatrahman/Ahwaaz/internal/domain/model"
)

var ErrArtistNotFound = errors.New("artist not found")

type ArtistRepo struct {
	pool *pgxpool.Pool
}

func NewArtistRepo(pool *pgxpool.Pool) *ArtistRepo {
	return &ArtistRepo{pool: pool}
}

const artistColumns = `
	id,
	owner_id,
	name,
	email,
	location_city,
	location_country,
	latitude,
	longitude,
	primary_practice,
	secondary_practices,
	style_genre,
	ethnic_background,
	bio,
	image_url,
	image_position_x,
	image_position_y,
	image_scale,
	contact_method,
	portfolio_website,
	portfolio_instagram,
	custom_links,
	is_published,
	created_at,
	updated_at`

// orderColumns whitelists the fields a list request may sort by. The
// leading "-" convention from the API maps to DESC.
var orderColumns = map[string]string{
	"created_date":  "created_at",
	"created_at":    "created_at",
	"updated_date":  "updated_at",
	"updated_at":    "updated_at",
	"name":          "name",
	"location_city": "location_city",
}

func (r *ArtistRepo) Create(ctx context.Context, a model.Artist) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is not initialized")
	}

	links, err := marshalCustomLinks(a.CustomLinks)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO artists (
	id,
	owner_id,
	name,
	email,
	location_city,
	location_country,
	latitude,
	longitude,
	primary_practice,
	secondary_practices,
	style_genre,
	ethnic_background,
	bio,
	image_url,
	image_position_x,
	image_position_y,
	image_scale,
	contact_method,
	portfolio_website,
	portfolio_instagram,
	custom_links,
	is_published,
	created_at,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
`

	if _, err := r.pool.Exec(ctx, query,
		a.ID,
		a.OwnerID,
		a.Name,
		a.Email,
		a.LocationCity,
		a.LocationCountry,
		a.Latitude,
		a.Longitude,
		a.PrimaryPractice,
		a.SecondaryPractices,
		a.StyleGenre,
		a.EthnicBackground,
		a.Bio,
		a.ImageURL,
		a.ImagePositionX,
		a.ImagePositionY,
		a.ImageScale,
		a.ContactMethod,
		a.PortfolioWebsite,
		a.PortfolioInstagram,
		links,
		a.IsPublished,
		a.CreatedAt.UTC(),
		a.UpdatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("create artist: %w", err)
	}

	return nil
}

func (r *ArtistRepo) Get(ctx context.Context, id string) (model.Artist, error) {
	if r.pool == nil {
		return model.Artist{}, ErrArtistNotFound
	}

	query := `SELECT` + artistColumns + ` FROM artists WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	a, err := scanArtist(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Artist{}, ErrArtistNotFound
		}
		return model.Artist{}, fmt.Errorf("get artist: %w", err)
	}

	return a, nil
}

func (r *ArtistRepo) Update(ctx context.Context, a model.Artist) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is not initialized")
	}

	links, err := marshalCustomLinks(a.CustomLinks)
	if err != nil {
		return err
	}

	const query = `
UPDATE artists SET
	name = $2,
	email = $3,
	location_city = $4,
	location_country = $5,
	latitude = $6,
	longitude = $7,
	primary_practice = $8,
	secondary_practices = $9,
	style_genre = $10,
	ethnic_background = $11,
	bio = $12,
	image_url = $13,
	image_position_x = $14,
	image_position_y = $15,
	image_scale = $16,
	contact_method = $17,
	portfolio_website = $18,
	portfolio_instagram = $19,
	custom_links = $20,
	is_published = $21,
	updated_at = $22
WHERE id = $1
`

	tag, err := r.pool.Exec(ctx, query,
		a.ID,
		a.Name,
		a.Email,
		a.LocationCity,
		a.LocationCountry,
		a.Latitude,
		a.Longitude,
		a.PrimaryPractice,
		a.SecondaryPractices,
		a.StyleGenre,
		a.EthnicBackground,
		a.Bio,
		a.ImageURL,
		a.ImagePositionX,
		a.ImagePositionY,
		a.ImageScale,
		a.ContactMethod,
		a.PortfolioWebsite,
		a.PortfolioInstagram,
		links,
		a.IsPublished,
		a.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrArtistNotFound
	}

	return nil
}

func (r *ArtistRepo) SetPublished(ctx context.Context, id string, published bool, at time.Time) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is not initialized")
	}

	const query = `UPDATE artists SET is_published = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, published, at.UTC())
	if err != nil {
		return fmt.Errorf("set artist published: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrArtistNotFound
	}

	return nil
}

func (r *ArtistRepo) Delete(ctx context.Context, id string) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is not initialized")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrArtistNotFound
	}

	return nil
}

// ListPublished returns published artists ordered by orderBy, which uses
// the "-field" prefix for descending order. Unknown fields fall back to
// newest first.
func (r *ArtistRepo) ListPublished(ctx context.Context, orderBy string, limit int) ([]model.Artist, error) {
	if r.pool == nil {
		return nil, nil
	}

	query := `SELECT` + artistColumns + ` FROM artists WHERE is_published ORDER BY ` + orderClause(orderBy)
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list published artists: %w", err)
	}
	defer rows.Close()

	return collectArtists(rows)
}

func (r *ArtistRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Artist, error) {
	if r.pool == nil {
		return nil, nil
	}

	query := `SELECT` + artistColumns + ` FROM artists WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list artists by owner: %w", err)
	}
	defer rows.Close()

	return collectArtists(rows)
}

func (r *ArtistRepo) ListIDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	if r.pool == nil {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id FROM artists WHERE owner_id = $1`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list artist ids by owner: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan artist id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artist ids: %w", err)
	}

	return ids, nil
}

func (r *ArtistRepo) DeleteAllForOwner(ctx context.Context, tx pgx.Tx, ownerID string) error {
	if tx == nil {
		return fmt.Errorf("transaction is required")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM artists WHERE owner_id = $1`, ownerID); err != nil {
		return fmt.Errorf("delete artists for owner: %w", err)
	}

	return nil
}

func orderClause(orderBy string) string {
	field := strings.TrimSpace(orderBy)
	dir := " ASC"
	if strings.HasPrefix(field, "-") {
		field = field[1:]
		dir = " DESC"
	}

	col, ok := orderColumns[field]
	if !ok {
		return "created_at DESC"
	}

	return col + dir
}

func marshalCustomLinks(links []model.CustomLink) ([]byte, error) {
	if links == nil {
		links = []model.CustomLink{}
	}
	data, err := json.Marshal(links)
	if err != nil {
		return nil, fmt.Errorf("marshal custom links: %w", err)
	}
	return data, nil
}

func scanArtist(row pgx.Row) (model.Artist, error) {
	var (
		a     model.Artist
		links []byte
	)

	err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.Name,
		&a.Email,
		&a.LocationCity,
		&a.LocationCountry,
		&a.Latitude,
		&a.Longitude,
		&a.PrimaryPractice,
		&a.SecondaryPractices,
		&a.StyleGenre,
		&a.EthnicBackground,
		&a.Bio,
		&a.ImageURL,
		&a.ImagePositionX,
		&a.ImagePositionY,
		&a.ImageScale,
		&a.ContactMethod,
		&a.PortfolioWebsite,
		&a.PortfolioInstagram,
		&links,
		&a.IsPublished,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return model.Artist{}, err
	}

	if len(links) > 0 {
		if err := json.Unmarshal(links, &a.CustomLinks); err != nil {
			return model.Artist{}, fmt.Errorf("unmarshal custom links: %w", err)
		}
	}

	return a, nil
}

func collectArtists(rows pgx.Rows) ([]model.Artist, error) {
	var artists []model.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}
