package identity

import (
	"context"
	"fmt"
	"testing"

	"github.com/myflixlabs/myflix-backend/pkg/config"
	"github.com/myflixlabs/myflix-backend/pkg/db"
	"github.com/myflixlabs/myflix-backend/pkg/enums"
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
		DSN:    fmt.Sprintf("file:identity_test_%d?mode=memory&cache=shared", testDBCounter),
	}
	client, err := db.New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.DB().AutoMigrate(&kvstore.StoreRecord{}))

	return NewRepository(kvstore.New(client))
}

func TestListSeedsTwoAccounts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "admin123", users[0].UID)
	assert.Equal(t, "admin@myflix.com", users[0].Email)
	assert.Equal(t, enums.RoleSuperAdmin, users[0].Role)
	assert.Equal(t, enums.PlanStatusPremium, users[0].PlanStatus)
	assert.Equal(t, "2099-12-31", users[0].ExpiryDate)

	assert.Equal(t, "user123", users[1].UID)
	assert.Equal(t, enums.RoleUser, users[1].Role)
	assert.Equal(t, enums.PlanStatusFree, users[1].PlanStatus)

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, again)
}

func TestFindByEmailExactMatch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user, found, err := repo.FindByEmail(ctx, "admin@myflix.com")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "admin123", user.UID)

	_, found, err = repo.FindByEmail(ctx, "ADMIN@MYFLIX.COM")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateReplacesByUID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user, found, err := repo.FindByUID(ctx, "user123")
	require.NoError(t, err)
	require.True(t, found)

	user.PlanStatus = enums.PlanStatusPremium
	require.NoError(t, repo.Update(ctx, *user))

	after, found, err := repo.FindByUID(ctx, "user123")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, enums.PlanStatusPremium, after.PlanStatus)
}

func TestUpdateUnknownUIDIsNoop(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	before, err := repo.List(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, User{UID: "ghost", Email: "ghost@example.com"}))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAppendAddsAccount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	newUser := User{
		UID:        "1730000000000",
		Email:      "new@x.com",
		Role:       enums.RoleUser,
		PlanStatus: enums.PlanStatusFree,
	}
	require.NoError(t, repo.Append(ctx, newUser))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "1730000000000", users[2].UID)
}
