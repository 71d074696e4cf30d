package films

import (
	"context"
	"strconv"
	"strings"

	"worldly/internal/item"
)

// Film is one Letterboxd export row (watched or watchlist), with TMDB
// enrichment joined in by exact (name, year) when an enrichment row
// exists. Year stays a string because the export stores it as text and it
// is part of the enrichment key.
type Film struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Year          string   `json:"year,omitempty"`
	WatchedDate   string   `json:"watched_date,omitempty"`
	LetterboxdURI string   `json:"letterboxd_uri,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Watched       bool     `json:"watched"`
	Country       string   `json:"country,omitempty"`
	ISOCode3      string   `json:"iso_code_3,omitempty"`

	Enrichment *Enrichment `json:"enrichment,omitempty"`
}

// Enrichment is one letterboxd_tmdb_enrichment row. Its absence never
// blocks a film from being listed or unified.
type Enrichment struct {
	TMDBID             int64    `json:"tmdb_id"`
	RuntimeMinutes     *int     `json:"runtime_minutes,omitempty"`
	Genres             []string `json:"genres,omitempty"`
	Director           string   `json:"director,omitempty"`
	Overview           string   `json:"overview,omitempty"`
	PosterPath         string   `json:"poster_path,omitempty"`
	BackdropPath       string   `json:"backdrop_path,omitempty"`
	ReleaseDate        string   `json:"release_date,omitempty"`
	Tagline            string   `json:"tagline,omitempty"`
	VoteAverage        *float64 `json:"vote_average,omitempty"`
	VoteCount          *int     `json:"vote_count,omitempty"`
	ProductionCountries []string `json:"production_countries,omitempty"`
	SpokenLanguages    string   `json:"spoken_languages,omitempty"`
}

// FilmKey identifies a film for the enrichment join: exact (name, year).
type FilmKey struct {
	Name string
	Year string
}

// Repository defines the contract for letterboxd storage.
type Repository interface {
	List(ctx context.Context, watched *bool, limit, offset int) ([]Film, int, error)
	ListAll(ctx context.Context) ([]Film, error)
	DistinctKeys(ctx context.Context) ([]FilmKey, error)
	ReplaceWatched(ctx context.Context, rows []ExportRow) (int, error)
	ReplaceWatchlist(ctx context.Context, rows []ExportRow) (int, error)
	ReplaceRatings(ctx context.Context, rows []RatingRow) (int, error)
	ReplaceDiary(ctx context.Context, rows []DiaryRow) (int, error)
}

// ExportRow is one line of a first-level Letterboxd CSV (watched.csv or
// watchlist.csv): the date the row was added, the film name and year, and
// the Letterboxd URI.
type ExportRow struct {
	Date          string
	Name          string
	Year          string
	LetterboxdURI string
}

// RatingRow is one line of ratings.csv.
type RatingRow struct {
	ExportRow
	Rating float64
}

// DiaryRow is one line of diary.csv.
type DiaryRow struct {
	ExportRow
	Rating      *float64
	Rewatch     bool
	Tags        string
	WatchedDate string
}

// Adapt maps a film row to the canonical Item shape. The director comes
// from enrichment when present; a missing enrichment row just leaves the
// enrichment-backed fields empty. Watchlist rows carry no watched date and
// so are never finished.
func Adapt(f Film) item.Item {
	res := item.ResolveDate(f.WatchedDate)
	it := item.Item{
		Kind:        item.KindFilm,
		CountryName: f.Country,
		ISOAlpha3:   f.ISOCode3,
		Title:       f.Name,
		Rating:      f.Rating,
		Year:        parseYear(f.Year),
		FinishedAt:  res,
		IsFinished:  res.Status != item.DateAbsent,
	}
	if f.Enrichment != nil {
		it.Creator = f.Enrichment.Director
		it.Notes = f.Enrichment.Tagline
	}
	return it
}

func parseYear(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &y
}

// Source adapts the repository into the unified item view.
type Source struct {
	repo Repository
}

func NewSource(repo Repository) *Source {
	return &Source{repo: repo}
}

func (s *Source) Items(ctx context.Context) ([]item.Item, error) {
	films, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]item.Item, 0, len(films))
	for _, f := range films {
		items = append(items, Adapt(f))
	}
	return items, nil
}
