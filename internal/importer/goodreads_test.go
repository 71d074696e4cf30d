package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGoodreadsDate(t *testing.T) {
	d := parseGoodreadsDate("Jun 1, 2021")
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC), *d)

	assert.Nil(t, parseGoodreadsDate(""))
	assert.Nil(t, parseGoodreadsDate("not set"))
	assert.Nil(t, parseGoodreadsDate("2021-06-01"))
}

func TestParseGoodreadsCSV(t *testing.T) {
	in := strings.Join([]string{
		"Title,Author,Rating,Date Read,Date Added,ISBN,Pages,Format",
		`The Stranger,Albert Camus,5,"Jun 1, 2021","May 20, 2021",9780679720201,123.0,Paperback`,
		`Shelf Filler,Nobody,,not set,not set,,unknown,`,
		`,Ghost Author,3,"Jan 1, 2020",,,,`,
	}, "\n")

	rows, err := ParseGoodreadsCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "The Stranger", first.Title)
	assert.Equal(t, "Albert Camus", first.Author)
	require.NotNil(t, first.DateRead)
	assert.Equal(t, time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC), *first.DateRead)
	require.NotNil(t, first.Pages)
	assert.Equal(t, 123, *first.Pages)
	assert.Equal(t, "Paperback", first.Format)

	second := rows[1]
	assert.Nil(t, second.DateRead)
	assert.Nil(t, second.Pages)
	assert.Nil(t, second.Rating)
}
