package importer

import (
	"fmt"
	"io"
	"strings"

	"worldly/internal/music"
)

// musicRecord is the validated shape of one music sheet row. ISO codes
// that fail validation are cleared, not fatal — the sheet has always been
// hand-maintained.
type musicRecord struct {
	ISOAlpha2 string `validate:"omitempty,len=2,alpha"`
	ISOAlpha3 string `validate:"omitempty,len=3,alpha"`
	Album     string `validate:"required"`
}

// ParseMusicCSV reads the shared listening sheet into listen rows:
// trimmed fields, empty strings dropped, ISO codes uppercased and cleared
// when they overflow their length, ratings and years parsed tolerantly.
// The listen date is kept raw for the date resolver.
func ParseMusicCSV(r io.Reader) ([]music.Listen, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, fmt.Errorf("music csv: %w", err)
	}

	listens := make([]music.Listen, 0, len(records))
	for _, rec := range records {
		l := music.Listen{
			CountryName:    rec["country_name"],
			ISOAlpha2:      strings.ToUpper(rec["iso_alpha_2"]),
			ISOAlpha3:      strings.ToUpper(rec["iso_alpha_3"]),
			Artist:         rec["artist"],
			Album:          rec["album"],
			Rating:         parseFloat(rec["rating"]),
			ListenDate:     rec["listen_date"],
			Comments:       rec["comments"],
			StateOrCountry: rec["state_or_country"],
			Year:           parseInt(rec["year"]),
			SpotifyLink:    rec["spotify_link"],
		}
		if err := validate.Struct(musicRecord{ISOAlpha2: l.ISOAlpha2, ISOAlpha3: l.ISOAlpha3, Album: l.Album}); err != nil {
			// Overflowing or non-alpha codes become absent, matching how
			// the sheet loader has always handled them. A missing album
			// means the row itself is junk.
			if l.Album == "" {
				continue
			}
			if len(l.ISOAlpha2) != 2 {
				l.ISOAlpha2 = ""
			}
			if len(l.ISOAlpha3) != 3 {
				l.ISOAlpha3 = ""
			}
		}
		listens = append(listens, l)
	}
	return listens, nil
}
