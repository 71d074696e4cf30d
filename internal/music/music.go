package music

import (
	"context"

	"worldly/internal/item"
)

// Listen is one row of worldly_countrys_listened: an album listened for a
// country, loaded from the shared listening sheet. ListenDate stays raw
// because the sheet writes dates day-first and not always cleanly.
type Listen struct {
	ID             int64    `json:"id"`
	CountryName    string   `json:"country_name,omitempty"`
	ISOAlpha2      string   `json:"iso_alpha_2,omitempty"`
	ISOAlpha3      string   `json:"iso_alpha_3,omitempty"`
	Artist         string   `json:"artist"`
	Album          string   `json:"album"`
	Rating         *float64 `json:"rating,omitempty"`
	ListenDate     string   `json:"listen_date,omitempty"`
	Comments       string   `json:"comments,omitempty"`
	StateOrCountry string   `json:"state_or_country,omitempty"`
	Year           *int     `json:"year,omitempty"`
	SpotifyLink    string   `json:"spotify_link,omitempty"`
}

// Repository defines the contract for listened-album storage.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]Listen, int, error)
	ListAll(ctx context.Context) ([]Listen, error)
	InsertBatch(ctx context.Context, listens []Listen) (int, error)
}

// Adapt maps a raw listen row to the canonical Item shape. A non-empty
// listen date marks the album finished even when the string does not
// parse; the unresolved state is carried on the item rather than dropped,
// preserving the historical finished counts.
func Adapt(l Listen) item.Item {
	res := item.ResolveDate(l.ListenDate)
	return item.Item{
		Kind:        item.KindAlbum,
		CountryName: l.CountryName,
		ISOAlpha2:   l.ISOAlpha2,
		ISOAlpha3:   l.ISOAlpha3,
		Creator:     l.Artist,
		Title:       l.Album,
		Rating:      l.Rating,
		Notes:       l.Comments,
		Year:        l.Year,
		FinishedAt:  res,
		IsFinished:  res.Status != item.DateAbsent,
	}
}

// Source adapts the repository into the unified item view.
type Source struct {
	repo Repository
}

func NewSource(repo Repository) *Source {
	return &Source{repo: repo}
}

func (s *Source) Items(ctx context.Context) ([]item.Item, error) {
	listens, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]item.Item, 0, len(listens))
	for _, l := range listens {
		items = append(items, Adapt(l))
	}
	return items, nil
}
