package music

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

const listenColumns = `
	id, COALESCE(country_name, ''), COALESCE(iso_alpha_2, ''), COALESCE(iso_alpha_3, ''),
	COALESCE(artist, ''), COALESCE(album, ''), rating, COALESCE(listen_date, ''),
	COALESCE(comments, ''), COALESCE(state_or_country, ''), year, COALESCE(spotify_link, '')`

func scanListens(rows pgx.Rows) ([]Listen, error) {
	var listens []Listen
	for rows.Next() {
		var l Listen
		if err := rows.Scan(
			&l.ID, &l.CountryName, &l.ISOAlpha2, &l.ISOAlpha3,
			&l.Artist, &l.Album, &l.Rating, &l.ListenDate,
			&l.Comments, &l.StateOrCountry, &l.Year, &l.SpotifyLink,
		); err != nil {
			return nil, err
		}
		listens = append(listens, l)
	}
	return listens, rows.Err()
}

func (r *PostgresRepo) List(ctx context.Context, limit, offset int) ([]Listen, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM worldly_countrys_listened`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT` + listenColumns + `
	FROM worldly_countrys_listened
	ORDER BY id
	LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	listens, err := scanListens(rows)
	return listens, total, err
}

func (r *PostgresRepo) ListAll(ctx context.Context) ([]Listen, error) {
	query := `SELECT` + listenColumns + `
	FROM worldly_countrys_listened
	ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListens(rows)
}

func (r *PostgresRepo) InsertBatch(ctx context.Context, listens []Listen) (int, error) {
	const insertSQL = `
	INSERT INTO worldly_countrys_listened
		(country_name, iso_alpha_2, iso_alpha_3, artist, album, rating,
		 listen_date, comments, state_or_country, year, spotify_link)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	inserted := 0
	for _, l := range listens {
		if _, err := r.db.Exec(ctx, insertSQL,
			nullIfEmpty(l.CountryName), nullIfEmpty(l.ISOAlpha2), nullIfEmpty(l.ISOAlpha3),
			nullIfEmpty(l.Artist), nullIfEmpty(l.Album), l.Rating,
			nullIfEmpty(l.ListenDate), nullIfEmpty(l.Comments), nullIfEmpty(l.StateOrCountry),
			l.Year, nullIfEmpty(l.SpotifyLink),
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
