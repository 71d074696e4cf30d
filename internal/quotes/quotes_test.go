package quotes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"worldly/internal/item"
)

func TestAdapt(t *testing.T) {
	year := 1962

	it := Adapt(Quote{
		Quote:    "The impossible often has a kind of integrity.",
		Author:   "James Baldwin",
		Source:   "Another Country",
		Country:  "United States",
		ISOCode3: "USA",
		Year:     &year,
	})

	assert.Equal(t, item.KindQuote, it.Kind)
	assert.Equal(t, "James Baldwin", it.Creator)
	assert.Equal(t, "Another Country", it.Title)
	assert.Equal(t, "The impossible often has a kind of integrity.", it.Notes)
	assert.Equal(t, "USA", it.ISOAlpha3)
	assert.Equal(t, &year, it.Year)
}

func TestAdapt_NeverFinished(t *testing.T) {
	it := Adapt(Quote{Quote: "short", Author: "anon"})

	assert.False(t, it.IsFinished)
	assert.Equal(t, item.DateAbsent, it.FinishedAt.Status)
}
