package importer

import (
	"fmt"
	"io"

	"worldly/internal/films"
)

// ParseLetterboxdExport reads watched.csv or watchlist.csv. Both share
// the Date,Name,Year,Letterboxd URI layout.
func ParseLetterboxdExport(r io.Reader) ([]films.ExportRow, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, fmt.Errorf("letterboxd export: %w", err)
	}

	rows := make([]films.ExportRow, 0, len(records))
	for _, rec := range records {
		if rec["name"] == "" {
			continue
		}
		rows = append(rows, films.ExportRow{
			Date:          rec["date"],
			Name:          rec["name"],
			Year:          rec["year"],
			LetterboxdURI: rec["letterboxd_uri"],
		})
	}
	return rows, nil
}

// ParseLetterboxdRatings reads ratings.csv. Rows without a parseable
// rating are skipped; the rating is the whole point of the file.
func ParseLetterboxdRatings(r io.Reader) ([]films.RatingRow, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, fmt.Errorf("letterboxd ratings: %w", err)
	}

	rows := make([]films.RatingRow, 0, len(records))
	for _, rec := range records {
		if rec["name"] == "" {
			continue
		}
		rating := parseFloat(rec["rating"])
		if rating == nil {
			continue
		}
		rows = append(rows, films.RatingRow{
			ExportRow: films.ExportRow{
				Date:          rec["date"],
				Name:          rec["name"],
				Year:          rec["year"],
				LetterboxdURI: rec["letterboxd_uri"],
			},
			Rating: *rating,
		})
	}
	return rows, nil
}

// ParseLetterboxdDiary reads diary.csv.
func ParseLetterboxdDiary(r io.Reader) ([]films.DiaryRow, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, fmt.Errorf("letterboxd diary: %w", err)
	}

	rows := make([]films.DiaryRow, 0, len(records))
	for _, rec := range records {
		if rec["name"] == "" {
			continue
		}
		rows = append(rows, films.DiaryRow{
			ExportRow: films.ExportRow{
				Date:          rec["date"],
				Name:          rec["name"],
				Year:          rec["year"],
				LetterboxdURI: rec["letterboxd_uri"],
			},
			Rating:      parseFloat(rec["rating"]),
			Rewatch:     rec["rewatch"] == "Yes",
			Tags:        rec["tags"],
			WatchedDate: rec["watched_date"],
		})
	}
	return rows, nil
}
