package books

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

const bookColumns = `
	id, COALESCE(title, ''), COALESCE(author, ''), rating, date_read, date_added,
	COALESCE(isbn, ''), pages, COALESCE(format, ''), COALESCE(country, ''), COALESCE(iso_code_3, '')`

func scanBooks(rows pgx.Rows) ([]Book, error) {
	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Rating, &b.DateRead, &b.DateAdded,
			&b.ISBN, &b.Pages, &b.Format, &b.Country, &b.ISOCode3,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PostgresRepo) List(ctx context.Context, limit, offset int) ([]Book, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM worldly_good_reads_books`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT` + bookColumns + `
	FROM worldly_good_reads_books
	ORDER BY id
	LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	books, err := scanBooks(rows)
	return books, total, err
}

func (r *PostgresRepo) ListAll(ctx context.Context) ([]Book, error) {
	query := `SELECT` + bookColumns + `
	FROM worldly_good_reads_books
	ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *PostgresRepo) ExistingKeys(ctx context.Context) (map[Key]bool, error) {
	rows, err := r.db.Query(ctx, `SELECT COALESCE(title, ''), COALESCE(author, '') FROM worldly_good_reads_books`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make(map[Key]bool)
	for rows.Next() {
		var k Key
		if err := rows.Scan(&k.Title, &k.Author); err != nil {
			return nil, err
		}
		keys[k] = true
	}
	return keys, rows.Err()
}

func (r *PostgresRepo) InsertBatch(ctx context.Context, books []Book) (int, error) {
	const insertSQL = `
	INSERT INTO worldly_good_reads_books
		(title, author, rating, date_read, date_added, isbn, pages, format, country, iso_code_3)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	inserted := 0
	for _, b := range books {
		if _, err := r.db.Exec(ctx, insertSQL,
			b.Title, nullIfEmpty(b.Author), b.Rating, b.DateRead, b.DateAdded,
			nullIfEmpty(b.ISBN), b.Pages, nullIfEmpty(b.Format),
			nullIfEmpty(b.Country), nullIfEmpty(b.ISOCode3),
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
