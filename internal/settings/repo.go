package settings

import (
	"context"

	"github.com/myflixlabs/myflix-backend/pkg/kvstore"
)

// Repository persists the settings singleton under a fixed key.
type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Put(ctx context.Context, settings Settings) error
}

type store interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, in any) error
}

type repositoryImpl struct {
	store store
}

// NewRepository returns a settings repository bound to the key/value store.
func NewRepository(kv *kvstore.Store) Repository {
	return &repositoryImpl{store: kv}
}

// Get returns the stored record, writing the seed on first access.
func (r *repositoryImpl) Get(ctx context.Context) (Settings, error) {
	var settings Settings
	found, err := r.store.GetJSON(ctx, kvstore.KeySettings, &settings)
	if err != nil {
		return Settings{}, err
	}
	if !found {
		settings = seedSettings()
		if err := r.store.SetJSON(ctx, kvstore.KeySettings, settings); err != nil {
			return Settings{}, err
		}
	}
	return settings, nil
}

// Put overwrites the record unconditionally.
func (r *repositoryImpl) Put(ctx context.Context, settings Settings) error {
	return r.store.SetJSON(ctx, kvstore.KeySettings, settings)
}
