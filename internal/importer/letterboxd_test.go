package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLetterboxdExport(t *testing.T) {
	in := strings.Join([]string{
		"Date,Name,Year,Letterboxd URI",
		"2021-03-14,Portrait of a Lady on Fire,2019,https://boxd.it/abc",
		"2021-03-15,,2020,https://boxd.it/def",
	}, "\n")

	rows, err := ParseLetterboxdExport(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Portrait of a Lady on Fire", rows[0].Name)
	assert.Equal(t, "2019", rows[0].Year)
	assert.Equal(t, "https://boxd.it/abc", rows[0].LetterboxdURI)
}

func TestParseLetterboxdRatings_SkipsRowsWithoutRating(t *testing.T) {
	in := strings.Join([]string{
		"Date,Name,Year,Letterboxd URI,Rating",
		"2021-03-14,Portrait of a Lady on Fire,2019,https://boxd.it/abc,4.5",
		"2021-03-15,Unrated Film,2020,https://boxd.it/def,",
	}, "\n")

	rows, err := ParseLetterboxdRatings(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 4.5, rows[0].Rating)
}

func TestParseLetterboxdDiary(t *testing.T) {
	in := strings.Join([]string{
		"Date,Name,Year,Letterboxd URI,Rating,Rewatch,Tags,Watched Date",
		"2022-01-02,First Cow,2019,https://boxd.it/ghi,4.0,Yes,cinema,2022-01-01",
		"2022-02-03,Another,2021,https://boxd.it/jkl,,,,2022-02-02",
	}, "\n")

	rows, err := ParseLetterboxdDiary(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.True(t, first.Rewatch)
	require.NotNil(t, first.Rating)
	assert.Equal(t, 4.0, *first.Rating)
	assert.Equal(t, "2022-01-01", first.WatchedDate)

	assert.False(t, rows[1].Rewatch)
	assert.Nil(t, rows[1].Rating)
}
