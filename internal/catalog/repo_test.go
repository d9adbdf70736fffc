package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/myflixlabs/myflix-backend/pkg/config"
	"github.com/myflixlabs/myflix-backend/pkg/db"
	"github.com/myflixlabs/myflix-backend/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDBCounter int

func newTestRepo(t *testing.T) Repository {
	t.Helper()

	testDBCounter++
	cfg := config.DBConfig{
		Driver: config.DBDriverSQLite,
		DSN:    fmt.Sprintf("file:catalog_test_%d?mode=memory&cache=shared", testDBCounter),
	}
	client, err := db.New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.DB().AutoMigrate(&kvstore.StoreRecord{}))

	return NewRepository(kvstore.New(client))
}

func TestListSeedsOnFirstAccess(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	movies, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 11)
	assert.Equal(t, 1, movies[0].ID)
	assert.Equal(t, "Stranger Things: The Movie", movies[0].Title)

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, movies, again)
}

func TestAddPrependsAndIsIdempotentByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	movie := Movie{ID: 42, Title: "New Release", Genres: []string{"Drama"}}
	require.NoError(t, repo.Add(ctx, movie))

	movies, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 12)
	assert.Equal(t, 42, movies[0].ID)

	duplicate := Movie{ID: 42, Title: "Different Title"}
	require.NoError(t, repo.Add(ctx, duplicate))

	movies, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, movies, 12)
	assert.Equal(t, "New Release", movies[0].Title)
}

func TestUpdateReplacesInPlace(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	movies, err := repo.List(ctx)
	require.NoError(t, err)

	changed := movies[2]
	changed.Rating = 10.0
	require.NoError(t, repo.Update(ctx, changed))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(movies))
	assert.Equal(t, changed.ID, after[2].ID)
	assert.Equal(t, 10.0, after[2].Rating)
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	before, err := repo.List(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, Movie{ID: 9999, Title: "Ghost"}))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRemoveFiltersByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	before, err := repo.List(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, before[0].ID))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)
	for _, movie := range after {
		assert.NotEqual(t, before[0].ID, movie.ID)
	}

	require.NoError(t, repo.Remove(ctx, 9999))
	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, after, again)
}
