package item

import (
	"encoding/json"
	"strings"
	"time"
)

// DateStatus says what became of a raw completion-date string.
type DateStatus string

const (
	// DateResolved means the raw string parsed into a calendar date.
	DateResolved DateStatus = "resolved"
	// DateAbsent means the source carried no completion date at all.
	DateAbsent DateStatus = "absent"
	// DateUnparseable means a non-empty string was present but matched
	// neither accepted layout. The raw string is kept so the failure is
	// visible downstream instead of silently collapsing into "absent".
	DateUnparseable DateStatus = "unparseable"
)

const (
	layoutDayFirst = "02/01/2006"
	layoutISO      = "2006-01-02"
)

// Resolution is the outcome of resolving a raw date string. Date is only
// meaningful when Status is DateResolved; Raw is only set when Status is
// DateUnparseable.
type Resolution struct {
	Status DateStatus
	Date   time.Time
	Raw    string
}

// ResolveDate normalizes the two date layouts the sources use. The music
// sheet stores dates day-first while everything else is ISO, so day-first
// wins the ambiguity: "03/04/2020" is 3 April 2020, never March 4. It
// never fails; callers decide what an unresolved date means.
func ResolveDate(raw string) Resolution {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Resolution{Status: DateAbsent}
	}
	if d, err := time.Parse(layoutDayFirst, raw); err == nil {
		return Resolution{Status: DateResolved, Date: d}
	}
	if d, err := time.Parse(layoutISO, raw); err == nil {
		return Resolution{Status: DateResolved, Date: d}
	}
	return Resolution{Status: DateUnparseable, Raw: raw}
}

// ResolvedFrom wraps an already-structured date (e.g. a DATE column) so
// sources that never stored free text share the same Resolution shape.
func ResolvedFrom(d time.Time) Resolution {
	return Resolution{Status: DateResolved, Date: d}
}

// Resolved reports whether a usable calendar date is available.
func (r Resolution) Resolved() bool {
	return r.Status == DateResolved
}

// MarshalJSON renders a resolved date as "YYYY-MM-DD" and anything else as
// null, matching the API's historical date shape.
func (r Resolution) MarshalJSON() ([]byte, error) {
	if r.Status != DateResolved {
		return []byte("null"), nil
	}
	return json.Marshal(r.Date.Format(layoutISO))
}
