package item

import "context"

// Kind tags which source produced an Item.
type Kind string

const (
	KindAlbum Kind = "album"
	KindBook  Kind = "book"
	KindFilm  Kind = "film"
	KindQuote Kind = "quote"
)

// Item is one piece of consumed or tracked culture, regardless of source
// domain. Ratings are on each domain's own scale and must not be compared
// across kinds without rescaling.
type Item struct {
	Kind        Kind       `json:"kind"`
	CountryName string     `json:"country_name,omitempty"`
	ISOAlpha2   string     `json:"iso_alpha_2,omitempty"`
	ISOAlpha3   string     `json:"iso_alpha_3,omitempty"`
	Creator     string     `json:"creator,omitempty"`
	Title       string     `json:"title"`
	Rating      *float64   `json:"rating,omitempty"`
	Pages       *int       `json:"pages,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Year        *int       `json:"year,omitempty"`
	FinishedAt  Resolution `json:"finished_date"`
	IsFinished  bool       `json:"is_finished"`
}

// Source yields the canonical Items of one backing domain, in insertion
// order. Implementations read the backing store fresh on every call.
type Source interface {
	Items(ctx context.Context) ([]Item, error)
}
