package geo

import (
	"context"
	"log"

	"worldly/internal/item"
)

// Service wires the unified item view to the country aggregation. Each
// call rebuilds the index and the item collection from the backing store;
// nothing is cached between requests.
type Service struct {
	repo Repository
	view *item.View
}

func NewService(repo Repository, view *item.View) *Service {
	return &Service{repo: repo, view: view}
}

func (s *Service) index(ctx context.Context) (*Index, error) {
	countries, err := s.repo.ListCountries(ctx)
	if err != nil {
		return nil, err
	}
	return NewIndex(countries), nil
}

// CountryCounts returns per-country aggregate points over the unified view.
func (s *Service) CountryCounts(ctx context.Context, finishedOnly bool, w Weight) ([]Point, error) {
	ix, err := s.index(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.view.Unify(ctx, finishedOnly)
	if err != nil {
		return nil, err
	}
	points, dropped := Aggregate(ix, items, w)
	if dropped > 0 {
		log.Printf("country aggregate: dropped=%d of %d items without country identity", dropped, len(items))
	}
	return points, nil
}

// HexPoints returns centroid-placed points for the globe.
func (s *Service) HexPoints(ctx context.Context, finishedOnly bool, w Weight) ([]HexPoint, error) {
	ix, err := s.index(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.view.Unify(ctx, finishedOnly)
	if err != nil {
		return nil, err
	}
	points, dropped := Aggregate(ix, items, w)
	if dropped > 0 {
		log.Printf("country aggregate: dropped=%d of %d items without country identity", dropped, len(items))
	}
	return ix.HexPoints(points), nil
}

// Countries exposes the raw reference table.
func (s *Service) Countries(ctx context.Context) ([]Country, error) {
	return s.repo.ListCountries(ctx)
}
