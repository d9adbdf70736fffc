package kvstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/myflixlabs/myflix-backend/pkg/config"
	"github.com/myflixlabs/myflix-backend/pkg/db"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDBCounter int

func newTestStore(t *testing.T) *Store {
	t.Helper()

	testDBCounter++
	cfg := config.DBConfig{
		Driver: config.DBDriverSQLite,
		DSN:    fmt.Sprintf("file:kvstore_test_%d?mode=memory&cache=shared", testDBCounter),
	}
	client, err := db.New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.DB().AutoMigrate(&StoreRecord{}))
	return New(client)
}

func TestGetMissingKey(t *testing.T) {
	store := newTestStore(t)

	value, found, err := store.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestSetThenGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyMovies, `[{"id":1}]`))

	value, found, err := store.Get(ctx, KeyMovies)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":1}]`, value)
}

func TestSetOverwritesLastWriteWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeySettings, `{"v":1}`))
	require.NoError(t, store.Set(ctx, KeySettings, `{"v":2}`))

	value, found, err := store.Get(ctx, KeySettings)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"v":2}`, value)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeySessionUser, `{"uid":"1"}`))
	require.NoError(t, store.Delete(ctx, KeySessionUser))

	_, found, err := store.Get(ctx, KeySessionUser)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Delete(ctx, KeySessionUser))
}

func TestJSONRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	type doc struct {
		Names []string `json:"names"`
	}

	require.NoError(t, store.SetJSON(ctx, KeyUsers, doc{Names: []string{"a", "b"}}))

	var out doc
	found, err := store.GetJSON(ctx, KeyUsers, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, out.Names)

	found, err = store.GetJSON(ctx, "absent", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetJSONCorruptValue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyNotifications, "{not json"))

	var out map[string]any
	found, err := store.GetJSON(ctx, KeyNotifications, &out)
	assert.True(t, found)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
}
