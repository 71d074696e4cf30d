package books

import (
	"context"
	"time"

	"worldly/internal/item"
)

// Book is one row of worldly_good_reads_books, loaded from a Goodreads
// library export. DateRead is structured in storage, unlike the music
// sheet's free-text listen dates.
type Book struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author,omitempty"`
	Rating    *float64   `json:"rating,omitempty"`
	DateRead  *time.Time `json:"date_read,omitempty"`
	DateAdded *time.Time `json:"date_added,omitempty"`
	ISBN      string     `json:"isbn,omitempty"`
	Pages     *int       `json:"pages,omitempty"`
	Format    string     `json:"format,omitempty"`
	Country   string     `json:"country,omitempty"`
	ISOCode3  string     `json:"iso_code_3,omitempty"`
}

// Key identifies a book for import dedupe: exact (title, author) match.
type Key struct {
	Title  string
	Author string
}

// Repository defines the contract for book storage.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]Book, int, error)
	ListAll(ctx context.Context) ([]Book, error)
	ExistingKeys(ctx context.Context) (map[Key]bool, error)
	InsertBatch(ctx context.Context, books []Book) (int, error)
}

// Adapt maps a book row to the canonical Item shape. A book is finished
// exactly when date_read is set; there is no free-text date to resolve.
func Adapt(b Book) item.Item {
	it := item.Item{
		Kind:        item.KindBook,
		CountryName: b.Country,
		ISOAlpha3:   b.ISOCode3,
		Creator:     b.Author,
		Title:       b.Title,
		Rating:      b.Rating,
		Pages:       b.Pages,
		FinishedAt:  item.Resolution{Status: item.DateAbsent},
	}
	if b.DateRead != nil {
		it.FinishedAt = item.ResolvedFrom(*b.DateRead)
		it.IsFinished = true
	}
	return it
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
	for _, b := range rows {
		items = append(items, Adapt(b))
	}
	return items, nil
}
