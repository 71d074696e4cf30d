package films

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldly/internal/item"
)

func TestAdapt_WithEnrichment(t *testing.T) {
	rating := 4.5
	runtime := 102

	it := Adapt(Film{
		Name:        "Portrait of a Lady on Fire",
		Year:        "2019",
		WatchedDate: "2021-03-14",
		Rating:      &rating,
		Country:     "France",
		ISOCode3:    "FRA",
		Watched:     true,
		Enrichment: &Enrichment{
			TMDBID:         530385,
			RuntimeMinutes: &runtime,
			Director:       "Céline Sciamma",
			Tagline:        "Look at me.",
		},
	})

	assert.Equal(t, item.KindFilm, it.Kind)
	assert.Equal(t, "Céline Sciamma", it.Creator)
	assert.Equal(t, "FRA", it.ISOAlpha3)
	require.NotNil(t, it.Year)
	assert.Equal(t, 2019, *it.Year)
	assert.True(t, it.IsFinished)
	assert.True(t, it.FinishedAt.Resolved())
}

func TestAdapt_EnrichmentMissDoesNotBlockEmission(t *testing.T) {
	it := Adapt(Film{
		Name:        "Obscure Short",
		Year:        "1973",
		WatchedDate: "2022-08-02",
		Watched:     true,
	})

	assert.Equal(t, "Obscure Short", it.Title)
	assert.Empty(t, it.Creator)
	assert.Empty(t, it.Notes)
	assert.True(t, it.IsFinished)
}

func TestAdapt_WatchlistNeverFinished(t *testing.T) {
	it := Adapt(Film{Name: "Someday", Year: "2020"})

	assert.False(t, it.IsFinished)
	assert.Equal(t, item.DateAbsent, it.FinishedAt.Status)
}

func TestAdapt_BadYearDropsToNil(t *testing.T) {
	it := Adapt(Film{Name: "Undated", Year: "19??"})
	assert.Nil(t, it.Year)
}
