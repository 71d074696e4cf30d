package quotes

import (
	"context"

	"worldly/internal/item"
)

// Quote is one row of worldly_quotes. Quotes are collected, not consumed:
// they carry no completion-date semantics at all.
type Quote struct {
	ID        int64    `json:"id"`
	Quote     string   `json:"quote"`
	Author    string   `json:"author,omitempty"`
	Source    string   `json:"source,omitempty"`
	Type      string   `json:"type,omitempty"`
	Page      *int     `json:"page,omitempty"`
	Country   string   `json:"country,omitempty"`
	ISOAlpha2 string   `json:"iso_alpha_2,omitempty"`
	ISOCode3  string   `json:"iso_code_3,omitempty"`
	Year      *int     `json:"year,omitempty"`
	Category  string   `json:"category,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// Key identifies a quote for import dedupe: exact (quote, author) match.
type Key struct {
	Quote  string
	Author string
}

// Repository defines the contract for quote storage.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]Quote, int, error)
	ListAll(ctx context.Context) ([]Quote, error)
	ExistingKeys(ctx context.Context) (map[Key]bool, error)
	InsertBatch(ctx context.Context, quotes []Quote) (int, error)
}

// Adapt maps a quote row to the canonical Item shape. A quote can never
// be finished, so the finished-only view always excludes this kind.
func Adapt(q Quote) item.Item {
	return item.Item{
		Kind:        item.KindQuote,
		CountryName: q.Country,
		ISOAlpha2:   q.ISOAlpha2,
		ISOAlpha3:   q.ISOCode3,
		Creator:     q.Author,
		Title:       q.Source,
		Notes:       q.Quote,
		Year:        q.Year,
		FinishedAt:  item.Resolution{Status: item.DateAbsent},
		IsFinished:  false,
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
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]item.Item, 0, len(rows))
	for _, q := range rows {
		items = append(items, Adapt(q))
	}
	return items, nil
}
