package tmdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"worldly/internal/films"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) ExistingKeys(ctx context.Context) (map[films.FilmKey]bool, error) {
	rows, err := r.db.Query(ctx, `SELECT name, COALESCE(year, '') FROM letterboxd_tmdb_enrichment`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make(map[films.FilmKey]bool)
	for rows.Next() {
		var k films.FilmKey
		if err := rows.Scan(&k.Name, &k.Year); err != nil {
			return nil, err
		}
		keys[k] = true
	}
	return keys, rows.Err()
}

func (r *PostgresRepo) UpsertEnrichment(ctx context.Context, key films.FilmKey, d *MovieDetails) error {
	const upsertSQL = `
	INSERT INTO letterboxd_tmdb_enrichment
		(name, year, tmdb_id, runtime_minutes, genres, director, overview,
		 poster_path, backdrop_path, release_date, tagline, vote_average,
		 vote_count, production_countries, spoken_languages)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	ON CONFLICT (name, year)
	DO UPDATE SET
		tmdb_id = EXCLUDED.tmdb_id,
		runtime_minutes = EXCLUDED.runtime_minutes,
		genres = EXCLUDED.genres,
		director = EXCLUDED.director,
		overview = EXCLUDED.overview,
		poster_path = EXCLUDED.poster_path,
		backdrop_path = EXCLUDED.backdrop_path,
		release_date = EXCLUDED.release_date,
		tagline = EXCLUDED.tagline,
		vote_average = EXCLUDED.vote_average,
		vote_count = EXCLUDED.vote_count,
		production_countries = EXCLUDED.production_countries,
		spoken_languages = EXCLUDED.spoken_languages,
		updated_at = NOW()`

	var genres, countries any
	if len(d.Genres) > 0 {
		genres = d.Genres
	}
	if len(d.ProductionCountries) > 0 {
		countries = d.ProductionCountries
	}
	_, err := r.db.Exec(ctx, upsertSQL,
		key.Name, key.Year, d.TMDBID, d.RuntimeMinutes, genres,
		nullIfEmpty(d.Director), nullIfEmpty(d.Overview),
		nullIfEmpty(d.PosterPath), nullIfEmpty(d.BackdropPath),
		nullIfEmpty(d.ReleaseDate), nullIfEmpty(d.Tagline),
		d.VoteAverage, d.VoteCount, countries, nullIfEmpty(d.SpokenLanguages),
	)
	return err
}

func (r *PostgresRepo) CreateRun(ctx context.Context, run *Run) error {
	const sql = `
	INSERT INTO worldly_enrichment_runs (id, started_at, status)
	VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, sql, run.ID, run.StartedAt, run.Status)
	return err
}

func (r *PostgresRepo) UpdateRun(ctx context.Context, run *Run) error {
	const sql = `
	UPDATE worldly_enrichment_runs SET
		finished_at = $1,
		status = $2,
		films_total = $3,
		films_skipped = $4,
		films_matched = $5,
		films_upserted = $6,
		error = $7
	WHERE id = $8`
	_, err := r.db.Exec(ctx, sql,
		run.FinishedAt, run.Status, run.FilmsTotal, run.FilmsSkipped,
		run.FilmsMatched, run.FilmsUpserted, nullIfEmpty(run.Error), run.ID)
	return err
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
