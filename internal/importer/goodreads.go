package importer

import (
	"fmt"
	"io"
	"time"

	"worldly/internal/books"
)

// Goodreads exports write dates like "Jan 02, 2006" and use sentinel
// strings for missing values.
const goodreadsDateLayout = "Jan 2, 2006"

func parseGoodreadsDate(s string) *time.Time {
	switch s {
	case "", "not set":
		return nil
	}
	d, err := time.Parse(goodreadsDateLayout, s)
	if err != nil {
		return nil
	}
	return &d
}

// ParseGoodreadsCSV reads a Goodreads library export into book rows.
// Country and ISO fields are not in the export; they are set later in the
// app. Rows without a title are dropped.
func ParseGoodreadsCSV(r io.Reader) ([]books.Book, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, fmt.Errorf("goodreads csv: %w", err)
	}

	rows := make([]books.Book, 0, len(records))
	for _, rec := range records {
		if rec["title"] == "" {
			continue
		}
		pages := rec["pages"]
		if pages == "unknown" {
			pages = ""
		}
		rows = append(rows, books.Book{
			Title:     rec["title"],
			Author:    rec["author"],
			Rating:    parseFloat(rec["rating"]),
			DateRead:  parseGoodreadsDate(rec["date_read"]),
			DateAdded: parseGoodreadsDate(rec["date_added"]),
			ISBN:      rec["isbn"],
			Pages:     parseInt(pages),
			Format:    rec["format"],
		})
	}
	return rows, nil
}
