package geo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"worldly/internal/books"
	"worldly/internal/music"
	"worldly/internal/quotes"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

type stubMusicRepo struct {
	listens []music.Listen
}

func (s *stubMusicRepo) List(ctx context.Context, limit, offset int) ([]music.Listen, int, error) {
	return s.listens, len(s.listens), nil
}

func (s *stubMusicRepo) ListAll(ctx context.Context) ([]music.Listen, error) {
	return s.listens, nil
}

func (s *stubMusicRepo) InsertBatch(ctx context.Context, listens []music.Listen) (int, error) {
	return 0, nil
}

type stubBooksRepo struct {
	books []books.Book
}

func (s *stubBooksRepo) List(ctx context.Context, limit, offset int) ([]books.Book, int, error) {
	return s.books, len(s.books), nil
}

func (s *stubBooksRepo) ListAll(ctx context.Context) ([]books.Book, error) {
	return s.books, nil
}

func (s *stubBooksRepo) ExistingKeys(ctx context.Context) (map[books.Key]bool, error) {
	return map[books.Key]bool{}, nil
}

func (s *stubBooksRepo) InsertBatch(ctx context.Context, rows []books.Book) (int, error) {
	return 0, nil
}

type stubQuotesRepo struct {
	quotes []quotes.Quote
}

func (s *stubQuotesRepo) List(ctx context.Context, limit, offset int) ([]quotes.Quote, int, error) {
	return s.quotes, len(s.quotes), nil
}

func (s *stubQuotesRepo) ListAll(ctx context.Context) ([]quotes.Quote, error) {
	return s.quotes, nil
}

func (s *stubQuotesRepo) ExistingKeys(ctx context.Context) (map[quotes.Key]bool, error) {
	return map[quotes.Key]bool{}, nil
}

func (s *stubQuotesRepo) InsertBatch(ctx context.Context, rows []quotes.Quote) (int, error) {
	return 0, nil
}
