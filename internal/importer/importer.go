// Package importer parses the export files the site is fed from — the
// shared music sheet CSV, Letterboxd exports, a Goodreads library export,
// and the quotes JSON — into domain rows ready for insertion. Parsing is
// tolerant the way the original loaders were: fields are trimmed, empties
// become absent values, and malformed optionals are dropped rather than
// failing the row.
package importer

import (
	"encoding/csv"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// record is one CSV row keyed by snake_cased header.
type record map[string]string

func readRecords(r io.Reader) ([]record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = snakeCase(h)
	}

	var records []record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rec := make(record, len(cols))
		for i, v := range row {
			if i >= len(cols) {
				break
			}
			rec[cols[i]] = strings.TrimSpace(v)
		}
		records = append(records, rec)
	}
	return records, nil
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9_]`)
var spaces = regexp.MustCompile(`[\s\-]+`)

func snakeCase(header string) string {
	s := strings.TrimSpace(header)
	s = spaces.ReplaceAllString(s, "_")
	s = nonAlnum.ReplaceAllString(s, "")
	return strings.ToLower(s)
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt(s string) *int {
	if s == "" {
		return nil
	}
	// Goodreads sometimes writes pages as "123.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n := int(f)
		return &n
	}
	return nil
}
