package item

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	items []Item
	err   error
}

func (s *stubSource) Items(ctx context.Context) ([]Item, error) {
	return s.items, s.err
}

func finished(title string, kind Kind) Item {
	return Item{
		Kind:       kind,
		Title:      title,
		FinishedAt: ResolvedFrom(time.Date(2022, time.January, 15, 0, 0, 0, 0, time.UTC)),
		IsFinished: true,
	}
}

func unfinished(title string, kind Kind) Item {
	return Item{
		Kind:       kind,
		Title:      title,
		FinishedAt: Resolution{Status: DateAbsent},
	}
}

func TestView_Unify_OrderIsSourceThenInsertion(t *testing.T) {
	view := NewView(
		&stubSource{items: []Item{finished("album one", KindAlbum), unfinished("album two", KindAlbum)}},
		&stubSource{items: []Item{finished("book one", KindBook)}},
	)

	items, err := view.Unify(context.Background(), false)
	require.NoError(t, err)

	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title
	}
	assert.Equal(t, []string{"album one", "album two", "book one"}, titles)
}

func TestView_Unify_FinishedOnlyIsSubset(t *testing.T) {
	view := NewView(
		&stubSource{items: []Item{finished("a", KindAlbum), unfinished("b", KindAlbum)}},
		&stubSource{items: []Item{finished("c", KindBook), unfinished("d", KindBook)}},
		&stubSource{items: []Item{unfinished("q", KindQuote)}},
	)
	ctx := context.Background()

	all, err := view.Unify(ctx, false)
	require.NoError(t, err)
	subset, err := view.Unify(ctx, true)
	require.NoError(t, err)

	assert.Len(t, all, 5)
	assert.Len(t, subset, 2)

	allTitles := make(map[string]bool)
	for _, it := range all {
		allTitles[it.Title] = true
	}
	for _, it := range subset {
		assert.True(t, allTitles[it.Title], "subset item %q not in full view", it.Title)
		assert.True(t, it.IsFinished)
		assert.NotEqual(t, KindQuote, it.Kind)
	}
}

func TestView_Unify_SourceError(t *testing.T) {
	view := NewView(
		&stubSource{items: []Item{finished("a", KindAlbum)}},
		&stubSource{err: errors.New("connection refused")},
	)

	_, err := view.Unify(context.Background(), false)
	assert.Error(t, err)
}

func TestView_Unify_UnparseableDateStillFinished(t *testing.T) {
	// Historical behavior: a present but unparseable completion date
	// still counts as finished, and the unresolved state stays visible.
	it := Item{
		Kind:       KindAlbum,
		Title:      "mystery date",
		FinishedAt: ResolveDate("sometime in march"),
	}
	it.IsFinished = it.FinishedAt.Status != DateAbsent

	view := NewView(&stubSource{items: []Item{it}})
	subset, err := view.Unify(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, subset, 1)
	assert.Equal(t, DateUnparseable, subset[0].FinishedAt.Status)
	assert.False(t, subset[0].FinishedAt.Resolved())
}
