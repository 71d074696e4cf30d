package tmdb

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"worldly/internal/films"
)

// Run records one enrichment pass for bookkeeping: what ran, how long,
// and how many films it matched and upserted.
type Run struct {
	ID            string
	StartedAt     time.Time
	FinishedAt    *time.Time
	Status        string // RUNNING, COMPLETED, FAILED
	FilmsTotal    int
	FilmsSkipped  int
	FilmsMatched  int
	FilmsUpserted int
	Error         string
}

// MovieClient is what the enricher needs from the TMDB API.
type MovieClient interface {
	SearchMovie(ctx context.Context, name, year string) (int64, error)
	GetMovieDetails(ctx context.Context, tmdbID int64) (*MovieDetails, error)
}

// FilmKeys is what the enricher needs from the films store.
type FilmKeys interface {
	DistinctKeys(ctx context.Context) ([]films.FilmKey, error)
}

// Repository defines the contract for the enrichment store.
type Repository interface {
	ExistingKeys(ctx context.Context) (map[films.FilmKey]bool, error)
	UpsertEnrichment(ctx context.Context, key films.FilmKey, details *MovieDetails) error
	CreateRun(ctx context.Context, run *Run) error
	UpdateRun(ctx context.Context, run *Run) error
}

// Service enriches letterboxd films from TMDB. A run is resumable: films
// already present in the enrichment store are skipped, so an interrupted
// pass picks up where it stopped.
type Service struct {
	client MovieClient
	films  FilmKeys
	repo   Repository
}

func NewService(client MovieClient, filmKeys FilmKeys, repo Repository) *Service {
	return &Service{client: client, films: filmKeys, repo: repo}
}

func (s *Service) Run(ctx context.Context) (err error) {
	run := &Run{
		ID:        uuid.NewString(),
		Status:    "RUNNING",
		StartedAt: time.Now(),
	}
	if rErr := s.repo.CreateRun(ctx, run); rErr != nil {
		return rErr
	}

	defer func() {
		now := time.Now()
		run.FinishedAt = &now
		if err != nil && run.Error == "" {
			run.Error = err.Error()
		}
		if run.Error != "" {
			run.Status = "FAILED"
		} else {
			run.Status = "COMPLETED"
		}
		if updateErr := s.repo.UpdateRun(ctx, run); updateErr != nil {
			log.Printf("Failed to update enrichment run %s: %v", run.ID, updateErr)
		}
	}()

	keys, err := s.films.DistinctKeys(ctx)
	if err != nil {
		return err
	}
	run.FilmsTotal = len(keys)

	existing, err := s.repo.ExistingKeys(ctx)
	if err != nil {
		return err
	}

	for _, key := range keys {
		if existing[key] {
			run.FilmsSkipped++
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		tmdbID, err := s.client.SearchMovie(ctx, key.Name, key.Year)
		if err != nil {
			if errors.Is(err, ErrNoMatch) {
				log.Printf("No TMDB match: %s (%s)", key.Name, key.Year)
				continue
			}
			return err
		}
		run.FilmsMatched++

		details, err := s.client.GetMovieDetails(ctx, tmdbID)
		if err != nil {
			log.Printf("No details for TMDB id %d: %s: %v", tmdbID, key.Name, err)
			continue
		}

		if err := s.repo.UpsertEnrichment(ctx, key, details); err != nil {
			log.Printf("Failed to upsert enrichment for %s (%s): %v", key.Name, key.Year, err)
			continue
		}
		run.FilmsUpserted++
	}
	return nil
}
