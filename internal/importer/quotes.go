package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"worldly/internal/quotes"
)

// quoteJSON matches the quotes_keep.json entries. Older entries name the
// source "book" and store tags as a comma-joined "theme" string.
type quoteJSON struct {
	Quote    string   `json:"quote"`
	Author   string   `json:"author"`
	Book     string   `json:"book"`
	Source   string   `json:"source"`
	Type     string   `json:"type"`
	Page     *int     `json:"page"`
	Country  string   `json:"country"`
	ISOCode3 string   `json:"iso_code_3"`
	Year     *int     `json:"year"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Theme    string   `json:"theme"`
}

// ParseQuotesJSON reads the quotes file. The top level may be a bare list
// or an object with a "quotes" key.
func ParseQuotesJSON(r io.Reader) ([]quotes.Quote, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("quotes json: %w", err)
	}

	var entries []quoteJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		var wrapper struct {
			Quotes []quoteJSON `json:"quotes"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("quotes json: structure not recognized: %w", err)
		}
		entries = wrapper.Quotes
	}

	rows := make([]quotes.Quote, 0, len(entries))
	for _, e := range entries {
		text := strings.TrimSpace(e.Quote)
		if text == "" {
			continue
		}
		source := e.Book
		if source == "" {
			source = e.Source
		}
		tags := e.Tags
		if len(tags) == 0 && e.Theme != "" {
			for _, t := range strings.Split(e.Theme, ",") {
				if t = strings.TrimSpace(t); t != "" {
					tags = append(tags, t)
				}
			}
		}
		rows = append(rows, quotes.Quote{
			Quote:    text,
			Author:   strings.TrimSpace(e.Author),
			Source:   source,
			Type:     e.Type,
			Page:     e.Page,
			Country:  e.Country,
			ISOCode3: e.ISOCode3,
			Year:     e.Year,
			Category: e.Category,
			Tags:     tags,
		})
	}
	return rows, nil
}
