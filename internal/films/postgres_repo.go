package films

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// sourceTag marks rows loaded from a Letterboxd export so a reload can
// truncate exactly what it loaded.
const sourceTag = "letterboxd"

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// filmQuery unions watched rows with watchlist rows not yet watched, then
// joins ratings and TMDB enrichment by exact (name, year). Watchlist rows
// carry no watched date.
const filmQuery = `
	WITH all_films AS (
		SELECT w.id, w.name, COALESCE(w.year, '') AS year, COALESCE(w.date, '') AS watched_date,
		       COALESCE(w.letterboxd_uri, '') AS letterboxd_uri,
		       COALESCE(w.country, '') AS country, COALESCE(w.iso_code_3, '') AS iso_code_3,
		       TRUE AS watched
		FROM letterboxd_watched w
		UNION ALL
		SELECT wl.id, wl.name, COALESCE(wl.year, ''), '',
		       COALESCE(wl.letterboxd_uri, ''),
		       COALESCE(wl.country, ''), COALESCE(wl.iso_code_3, ''),
		       FALSE
		FROM letterboxd_watchlist wl
		WHERE NOT EXISTS (
			SELECT 1 FROM letterboxd_watched w2
			WHERE w2.name = wl.name AND COALESCE(w2.year, '') = COALESCE(wl.year, '')
		)
	)
	SELECT f.id, f.name, f.year, f.watched_date, f.letterboxd_uri, f.country, f.iso_code_3, f.watched,
	       r.rating,
	       e.tmdb_id, e.runtime_minutes, e.genres, COALESCE(e.director, ''), COALESCE(e.overview, ''),
	       COALESCE(e.poster_path, ''), COALESCE(e.backdrop_path, ''), COALESCE(e.release_date, ''),
	       COALESCE(e.tagline, ''), e.vote_average, e.vote_count, e.production_countries,
	       COALESCE(e.spoken_languages, '')
	FROM all_films f
	LEFT JOIN letterboxd_ratings r
	       ON r.name = f.name AND COALESCE(r.year, '') = f.year
	LEFT JOIN letterboxd_tmdb_enrichment e
	       ON e.name = f.name AND COALESCE(e.year, '') = f.year`

func scanFilms(rows pgx.Rows) ([]Film, error) {
	var films []Film
	for rows.Next() {
		var f Film
		var tmdbID *int64
		var runtime, voteCount *int
		var genres, prodCountries []string
		var director, overview, poster, backdrop, release, tagline, spoken string
		var voteAvg *float64

		if err := rows.Scan(
			&f.ID, &f.Name, &f.Year, &f.WatchedDate, &f.LetterboxdURI, &f.Country, &f.ISOCode3, &f.Watched,
			&f.Rating,
			&tmdbID, &runtime, &genres, &director, &overview,
			&poster, &backdrop, &release,
			&tagline, &voteAvg, &voteCount, &prodCountries,
			&spoken,
		); err != nil {
			return nil, err
		}
		if tmdbID != nil {
			f.Enrichment = &Enrichment{
				TMDBID:              *tmdbID,
				RuntimeMinutes:      runtime,
				Genres:              genres,
				Director:            director,
				Overview:            overview,
				PosterPath:          poster,
				BackdropPath:        backdrop,
				ReleaseDate:         release,
				Tagline:             tagline,
				VoteAverage:         voteAvg,
				VoteCount:           voteCount,
				ProductionCountries: prodCountries,
				SpokenLanguages:     spoken,
			}
		}
		films = append(films, f)
	}
	return films, rows.Err()
}

func (r *PostgresRepo) List(ctx context.Context, watched *bool, limit, offset int) ([]Film, int, error) {
	where := ""
	args := []any{limit, offset}
	if watched != nil {
		where = " WHERE f.watched = $3"
		args = append(args, *watched)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM (` + filmQuery + where + `) counted`
	countArgs := args[2:]
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := filmQuery + where + ` ORDER BY f.watched_date DESC, f.id LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	films, err := scanFilms(rows)
	return films, total, err
}

func (r *PostgresRepo) ListAll(ctx context.Context) ([]Film, error) {
	rows, err := r.db.Query(ctx, filmQuery+` ORDER BY f.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFilms(rows)
}

// DistinctKeys returns every distinct (name, year) across watched and
// watchlist, the unit the TMDB enrichment is keyed on.
func (r *PostgresRepo) DistinctKeys(ctx context.Context) ([]FilmKey, error) {
	const query = `
	SELECT DISTINCT name, COALESCE(year, '')
	FROM (
		SELECT name, year FROM letterboxd_watched
		UNION
		SELECT name, year FROM letterboxd_watchlist
	) films
	WHERE name <> ''
	ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []FilmKey
	for rows.Next() {
		var k FilmKey
		if err := rows.Scan(&k.Name, &k.Year); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (r *PostgresRepo) ReplaceWatched(ctx context.Context, rows []ExportRow) (int, error) {
	return r.replaceExport(ctx, "letterboxd_watched", rows)
}

func (r *PostgresRepo) ReplaceWatchlist(ctx context.Context, rows []ExportRow) (int, error) {
	return r.replaceExport(ctx, "letterboxd_watchlist", rows)
}

func (r *PostgresRepo) replaceExport(ctx context.Context, table string, rows []ExportRow) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE _source = $1`, table), sourceTag); err != nil {
		return 0, err
	}

	insertSQL := fmt.Sprintf(`
		INSERT INTO %s (date, name, year, letterboxd_uri, _source)
		VALUES ($1, $2, $3, $4, $5)`, table)
	for _, row := range rows {
		if _, err := tx.Exec(ctx, insertSQL,
			nullIfEmpty(row.Date), row.Name, nullIfEmpty(row.Year), nullIfEmpty(row.LetterboxdURI), sourceTag,
		); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (r *PostgresRepo) ReplaceRatings(ctx context.Context, rows []RatingRow) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM letterboxd_ratings WHERE _source = $1`, sourceTag); err != nil {
		return 0, err
	}
	const insertSQL = `
		INSERT INTO letterboxd_ratings (date, name, year, letterboxd_uri, rating, _source)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, row := range rows {
		if _, err := tx.Exec(ctx, insertSQL,
			nullIfEmpty(row.Date), row.Name, nullIfEmpty(row.Year), nullIfEmpty(row.LetterboxdURI), row.Rating, sourceTag,
		); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (r *PostgresRepo) ReplaceDiary(ctx context.Context, rows []DiaryRow) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM letterboxd_diary WHERE _source = $1`, sourceTag); err != nil {
		return 0, err
	}
	const insertSQL = `
		INSERT INTO letterboxd_diary (date, name, year, letterboxd_uri, rating, rewatch, tags, watched_date, _source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, row := range rows {
		if _, err := tx.Exec(ctx, insertSQL,
			nullIfEmpty(row.Date), row.Name, nullIfEmpty(row.Year), nullIfEmpty(row.LetterboxdURI),
			row.Rating, row.Rewatch, nullIfEmpty(row.Tags), nullIfEmpty(row.WatchedDate), sourceTag,
		); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
