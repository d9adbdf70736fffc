package catalog

import (
	"context"
	"testing"

	"github.com/myflixlabs/myflix-backend/pkg/config"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	movies []Movie
}

func (f *fakeRepo) List(ctx context.Context) ([]Movie, error) {
	return append([]Movie(nil), f.movies...), nil
}

func (f *fakeRepo) Add(ctx context.Context, movie Movie) error {
	for _, existing := range f.movies {
		if existing.ID == movie.ID {
			return nil
		}
	}
	f.movies = append([]Movie{movie}, f.movies...)
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, movie Movie) error {
	for i, existing := range f.movies {
		if existing.ID == movie.ID {
			f.movies[i] = movie
		}
	}
	return nil
}

func (f *fakeRepo) Remove(ctx context.Context, id int) error {
	kept := f.movies[:0]
	for _, existing := range f.movies {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	f.movies = kept
	return nil
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo, config.SimConfig{})
	require.NoError(t, err)
	return svc
}

func TestGetReturnsMatch(t *testing.T) {
	repo := &fakeRepo{movies: []Movie{{ID: 1, Title: "One"}, {ID: 2, Title: "Two"}}}
	svc := newTestService(t, repo)

	movie, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Two", movie.Title)
}

func TestGetUnknownIDIsNotFound(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	_, err := svc.Get(context.Background(), 99)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestSearchMatchesTitleAndGenre(t *testing.T) {
	repo := &fakeRepo{movies: []Movie{
		{ID: 1, Title: "Interstellar", Genres: []string{"Sci-Fi"}},
		{ID: 2, Title: "The Godfather", Genres: []string{"Crime", "Drama"}},
		{ID: 3, Title: "Inception", Genres: []string{"Sci-Fi", "Thriller"}},
	}}
	svc := newTestService(t, repo)
	ctx := context.Background()

	byTitle, err := svc.Search(ctx, "inter")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, 1, byTitle[0].ID)

	byGenre, err := svc.Search(ctx, "sci-fi")
	require.NoError(t, err)
	assert.Len(t, byGenre, 2)

	empty, err := svc.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAddValidatesInput(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})
	ctx := context.Background()

	assert.Error(t, svc.Add(ctx, Movie{Title: "No ID"}))
	assert.Error(t, svc.Add(ctx, Movie{ID: 5}))
	assert.NoError(t, svc.Add(ctx, Movie{ID: 5, Title: "Valid"}))
}

func TestImportFabricatesAndStoresMovie(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	movie, err := svc.Import(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, 603, movie.ID)
	assert.Equal(t, "Imported Movie (603)", movie.Title)
	assert.Equal(t, []string{"Action", "Thriller"}, movie.Genres)
	assert.Equal(t, 7.5, movie.Rating)
	assert.False(t, movie.IsPremium)
	assert.Equal(t, 2024, movie.Year)

	stored, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 603, stored[0].ID)
}

func TestImportExistingIDKeepsOriginal(t *testing.T) {
	repo := &fakeRepo{movies: []Movie{{ID: 603, Title: "The Matrix"}}}
	svc := newTestService(t, repo)

	_, err := svc.Import(context.Background(), 603)
	require.NoError(t, err)

	stored, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "The Matrix", stored[0].Title)
}

func TestImportRejectsNonPositiveID(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	_, err := svc.Import(context.Background(), 0)
	assert.Error(t, err)
}
