package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Country Name", "country_name"},
		{"ISO Alpha-2", "iso_alpha_2"},
		{" Listen Date ", "listen_date"},
		{"Letterboxd URI", "letterboxd_uri"},
		{"rating", "rating"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, snakeCase(tt.in), tt.in)
	}
}

func TestReadRecords_TrimsAndKeysBySnakeCasedHeader(t *testing.T) {
	in := "Country Name,ISO Alpha-2,Album\n France ,FR,  Histoire de Melody Nelson \n"

	records, err := readRecords(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "France", records[0]["country_name"])
	assert.Equal(t, "FR", records[0]["iso_alpha_2"])
	assert.Equal(t, "Histoire de Melody Nelson", records[0]["album"])
}

func TestReadRecords_RaggedRows(t *testing.T) {
	// Hand-maintained sheets drop trailing cells; the extra columns just
	// come back empty.
	in := "a,b,c\n1,2\n1,2,3,4\n"

	records, err := readRecords(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[0]["c"])
	assert.Equal(t, "3", records[1]["c"])
}

func TestParseFloat(t *testing.T) {
	f := parseFloat("8.5")
	require.NotNil(t, f)
	assert.Equal(t, 8.5, *f)

	assert.Nil(t, parseFloat(""))
	assert.Nil(t, parseFloat("not a number"))
}

func TestParseInt_AcceptsFloatFormattedPages(t *testing.T) {
	n := parseInt("123.0")
	require.NotNil(t, n)
	assert.Equal(t, 123, *n)

	assert.Nil(t, parseInt(""))
	assert.Nil(t, parseInt("many"))
}
