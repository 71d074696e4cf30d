package quotes

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const quoteColumns = `
	id, COALESCE(quote, ''), COALESCE(author, ''), COALESCE(source, ''), COALESCE(type, ''),
	page, COALESCE(country, ''), COALESCE(iso_alpha_2, ''), COALESCE(iso_code_3, ''),
	year, COALESCE(category, ''), tags`

func scanQuotes(rows pgx.Rows) ([]Quote, error) {
	var quotes []Quote
	for rows.Next() {
		var q Quote
		if err := rows.Scan(
			&q.ID, &q.Quote, &q.Author, &q.Source, &q.Type,
			&q.Page, &q.Country, &q.ISOAlpha2, &q.ISOCode3,
			&q.Year, &q.Category, &q.Tags,
		); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (r *PostgresRepo) List(ctx context.Context, limit, offset int) ([]Quote, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM worldly_quotes`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT` + quoteColumns + `
	FROM worldly_quotes
	ORDER BY id
	LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	quotes, err := scanQuotes(rows)
	return quotes, total, err
}

func (r *PostgresRepo) ListAll(ctx context.Context) ([]Quote, error) {
	query := `SELECT` + quoteColumns + `
	FROM worldly_quotes
	ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQuotes(rows)
}

func (r *PostgresRepo) ExistingKeys(ctx context.Context) (map[Key]bool, error) {
	rows, err := r.db.Query(ctx, `SELECT COALESCE(quote, ''), COALESCE(author, '') FROM worldly_quotes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make(map[Key]bool)
	for rows.Next() {
		var k Key
		if err := rows.Scan(&k.Quote, &k.Author); err != nil {
			return nil, err
		}
		keys[k] = true
	}
	return keys, rows.Err()
}

func (r *PostgresRepo) InsertBatch(ctx context.Context, quotes []Quote) (int, error) {
	const insertSQL = `
	INSERT INTO worldly_quotes
		(quote, author, source, type, page, country, iso_alpha_2, iso_code_3, year, category, tags)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	inserted := 0
	for _, q := range quotes {
		var tags any
		if len(q.Tags) > 0 {
			tags = q.Tags
		}
		if _, err := r.db.Exec(ctx, insertSQL,
			q.Quote, nullIfEmpty(q.Author), nullIfEmpty(q.Source), nullIfEmpty(q.Type),
			q.Page, nullIfEmpty(q.Country), nullIfEmpty(q.ISOAlpha2), nullIfEmpty(q.ISOCode3),
			q.Year, nullIfEmpty(q.Category), tags,
		); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
