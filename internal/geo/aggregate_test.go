package geo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldly/internal/books"
	"worldly/internal/item"
	"worldly/internal/music"
	"worldly/internal/quotes"
)

func testIndex() *Index {
	return NewIndex([]Country{
		{Alpha2: "FR", Alpha3: "FRA", Name: "France", Lat: 46.23, Lng: 2.21},
		{Alpha2: "GB", Alpha3: "GBR", Name: "United Kingdom", Lat: 55.38, Lng: -3.44},
		{Alpha2: "DE", Alpha3: "DEU", Name: "Germany", Lat: 51.17, Lng: 10.45},
	})
}

func TestAggregate_MixedKeysMergeIntoOneBucket(t *testing.T) {
	// One row keyed by alpha-2, one only by name. Both are France and
	// must land in a single bucket, not double-count under two keys.
	items := []item.Item{
		{Kind: item.KindAlbum, ISOAlpha2: "FR"},
		{Kind: item.KindBook, CountryName: "France"},
	}

	points, dropped := Aggregate(testIndex(), items, WeightCount)
	assert.Zero(t, dropped)
	require.Len(t, points, 1)
	assert.Equal(t, "FR", points[0].CountryCode)
	assert.Equal(t, float64(2), points[0].Value)
}

func TestAggregate_Alpha3ResolvesToCanonicalBucket(t *testing.T) {
	items := []item.Item{
		{Kind: item.KindBook, ISOAlpha3: "FRA"},
		{Kind: item.KindAlbum, ISOAlpha2: "FR"},
		{Kind: item.KindQuote, ISOAlpha3: "DEU"},
	}

	points, dropped := Aggregate(testIndex(), items, WeightCount)
	assert.Zero(t, dropped)
	require.Len(t, points, 2)

	byCode := map[string]float64{}
	for _, p := range points {
		byCode[p.CountryCode] = p.Value
	}
	assert.Equal(t, float64(2), byCode["FR"])
	assert.Equal(t, float64(1), byCode["DE"])
}

func TestAggregate_DropsItemsWithoutCountryIdentity(t *testing.T) {
	items := []item.Item{
		{Kind: item.KindAlbum, ISOAlpha2: "FR"},
		{Kind: item.KindAlbum, Title: "no country at all"},
		{Kind: item.KindQuote, Title: "also none"},
	}

	points, dropped := Aggregate(testIndex(), items, WeightCount)
	assert.Equal(t, 2, dropped)
	require.Len(t, points, 1)
	assert.Equal(t, "FR", points[0].CountryCode)
}

func TestAggregate_UnknownCountryKeepsRawKeyBucket(t *testing.T) {
	// A country missing from the reference table still aggregates; it
	// just cannot be placed on the globe later.
	items := []item.Item{
		{Kind: item.KindAlbum, ISOAlpha2: "xx", CountryName: "Atlantis"},
		{Kind: item.KindAlbum, ISOAlpha2: "XX", CountryName: "Atlantis"},
	}

	points, dropped := Aggregate(testIndex(), items, WeightCount)
	assert.Zero(t, dropped)
	require.Len(t, points, 1)
	assert.Equal(t, "XX", points[0].CountryCode)
	assert.Equal(t, float64(2), points[0].Value)
}

func TestAggregate_RatingWeight(t *testing.T) {
	r1, r2 := 8.0, 6.5
	items := []item.Item{
		{Kind: item.KindAlbum, ISOAlpha2: "FR", Rating: &r1},
		{Kind: item.KindAlbum, ISOAlpha2: "FR", Rating: &r2},
		{Kind: item.KindAlbum, ISOAlpha2: "FR"}, // no rating, contributes nothing
	}

	points, _ := Aggregate(testIndex(), items, WeightRating)
	require.Len(t, points, 1)
	assert.Equal(t, 14.5, points[0].Value)
}

func TestAggregate_Deterministic(t *testing.T) {
	items := []item.Item{
		{Kind: item.KindAlbum, ISOAlpha2: "FR"},
		{Kind: item.KindBook, ISOAlpha3: "GBR"},
		{Kind: item.KindQuote, CountryName: "Germany"},
		{Kind: item.KindAlbum, ISOAlpha2: "GB"},
	}

	first, firstDropped := Aggregate(testIndex(), items, WeightCount)
	second, secondDropped := Aggregate(testIndex(), items, WeightCount)
	assert.Equal(t, first, second)
	assert.Equal(t, firstDropped, secondDropped)
}

func TestHexPoints_SkipsCodesWithoutCentroid(t *testing.T) {
	ix := testIndex()
	points := []Point{
		{CountryCode: "FR", Value: 3},
		{CountryCode: "ZZ", CountryName: "Nowhere", Value: 1},
	}

	hexes := ix.HexPoints(points)
	require.Len(t, hexes, 1)
	assert.Equal(t, 46.23, hexes[0].Lat)
	assert.Equal(t, 2.21, hexes[0].Lng)
	assert.Equal(t, float64(3), hexes[0].Value)
}

func TestParseWeight(t *testing.T) {
	assert.Equal(t, WeightCount, ParseWeight(""))
	assert.Equal(t, WeightCount, ParseWeight("count"))
	assert.Equal(t, WeightCount, ParseWeight("nonsense"))
	assert.Equal(t, WeightRating, ParseWeight("rating"))
}

// End to end: adapters -> unified view -> aggregate, checking the
// finished-only and full counts against hand-computed buckets.
func TestAggregate_EndToEnd(t *testing.T) {
	read := mustDate(t, "2021-06-01")

	musicSource := music.NewSource(&stubMusicRepo{listens: []music.Listen{
		{Album: "London Calling", ISOAlpha2: "GB", ListenDate: "15/01/2022"},
	}})
	booksSource := books.NewSource(&stubBooksRepo{books: []books.Book{
		{Title: "The Stranger", ISOCode3: "FRA", DateRead: &read},
		{Title: "Unread", ISOCode3: "FRA"},
	}})
	quotesSource := quotes.NewSource(&stubQuotesRepo{quotes: []quotes.Quote{
		{Quote: "Ich bin ein Satz.", ISOCode3: "DEU"},
	}})

	view := item.NewView(musicSource, booksSource, quotesSource)
	ix := testIndex()
	ctx := context.Background()

	finishedItems, err := view.Unify(ctx, true)
	require.NoError(t, err)
	finishedPoints, dropped := Aggregate(ix, finishedItems, WeightCount)
	assert.Zero(t, dropped)
	assert.Equal(t, map[string]float64{"GB": 1, "FR": 1}, pointMap(finishedPoints))

	allItems, err := view.Unify(ctx, false)
	require.NoError(t, err)
	allPoints, dropped := Aggregate(ix, allItems, WeightCount)
	assert.Zero(t, dropped)
	assert.Equal(t, map[string]float64{"GB": 1, "FR": 2, "DE": 1}, pointMap(allPoints))
}

func pointMap(points []Point) map[string]float64 {
	m := make(map[string]float64, len(points))
	for _, p := range points {
		m[p.CountryCode] = p.Value
	}
	return m
}
