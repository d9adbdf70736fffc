package player

import (
	"context"
	"testing"

	"github.com/myflixlabs/myflix-backend/internal/catalog"
	"github.com/myflixlabs/myflix-backend/internal/identity"
	"github.com/myflixlabs/myflix-backend/pkg/enums"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct{}

func (fakeResolver) ResolveSource(ctx context.Context, movieID int) (string, error) {
	return "https://vidsrc.to/embed/movie/603", nil
}

func freeUser() identity.User {
	return identity.User{UID: "user123", Role: enums.RoleUser, PlanStatus: enums.PlanStatusFree}
}

func TestCanWatch(t *testing.T) {
	free := catalog.Movie{ID: 1, IsPremium: false}
	premium := catalog.Movie{ID: 2, IsPremium: true}

	assert.True(t, CanWatch(free, freeUser()))
	assert.False(t, CanWatch(premium, freeUser()))

	premiumUser := freeUser()
	premiumUser.PlanStatus = enums.PlanStatusPremium
	assert.True(t, CanWatch(premium, premiumUser))

	admin := freeUser()
	admin.Role = enums.RoleAdmin
	assert.True(t, CanWatch(premium, admin))

	superAdmin := freeUser()
	superAdmin.Role = enums.RoleSuperAdmin
	assert.True(t, CanWatch(premium, superAdmin))
}

func TestStartReturnsOpeningSnapshot(t *testing.T) {
	manager, err := NewManager(fakeResolver{})
	require.NoError(t, err)
	defer manager.Stop()

	snap, err := manager.Start(context.Background(), catalog.Movie{ID: 603}, freeUser())
	require.NoError(t, err)
	assert.Equal(t, 603, snap.MovieID)
	assert.Equal(t, "https://vidsrc.to/embed/movie/603", snap.SourceURL)
	assert.Equal(t, 1445, snap.Position)

	sess, err := manager.Current()
	require.NoError(t, err)
	assert.Equal(t, 603, sess.Snapshot().MovieID)
}

func TestStartComputesShowAds(t *testing.T) {
	manager, err := NewManager(fakeResolver{})
	require.NoError(t, err)
	defer manager.Stop()

	// free plan on a non-premium title sees ads
	snap, err := manager.Start(context.Background(), catalog.Movie{ID: 2}, freeUser())
	require.NoError(t, err)
	assert.True(t, snap.ShowAds)

	premiumUser := freeUser()
	premiumUser.PlanStatus = enums.PlanStatusPremium
	snap, err = manager.Start(context.Background(), catalog.Movie{ID: 2}, premiumUser)
	require.NoError(t, err)
	assert.False(t, snap.ShowAds)

	snap, err = manager.Start(context.Background(), catalog.Movie{ID: 1, IsPremium: true}, premiumUser)
	require.NoError(t, err)
	assert.False(t, snap.ShowAds)
}

func TestStartDeniesPremiumToFreeUser(t *testing.T) {
	manager, err := NewManager(fakeResolver{})
	require.NoError(t, err)

	_, err = manager.Start(context.Background(), catalog.Movie{ID: 3, IsPremium: true}, freeUser())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeForbidden, typed.Code())
}

func TestStartReplacesActiveSession(t *testing.T) {
	manager, err := NewManager(fakeResolver{})
	require.NoError(t, err)
	defer manager.Stop()

	_, err = manager.Start(context.Background(), catalog.Movie{ID: 1}, freeUser())
	require.NoError(t, err)

	_, err = manager.Start(context.Background(), catalog.Movie{ID: 2}, freeUser())
	require.NoError(t, err)

	sess, err := manager.Current()
	require.NoError(t, err)
	assert.Equal(t, 2, sess.Snapshot().MovieID)
}

func TestStopClearsSession(t *testing.T) {
	manager, err := NewManager(fakeResolver{})
	require.NoError(t, err)

	_, err = manager.Start(context.Background(), catalog.Movie{ID: 1}, freeUser())
	require.NoError(t, err)

	manager.Stop()

	_, err = manager.Current()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
