package catalog

import (
	"context"

	"github.com/myflixlabs/myflix-backend/pkg/kvstore"
)

// Repository persists the catalog as one document under a fixed key.
// Every mutation is a full read-modify-write of the collection.
type Repository interface {
	List(ctx context.Context) ([]Movie, error)
	Add(ctx context.Context, movie Movie) error
	Update(ctx context.Context, movie Movie) error
	Remove(ctx context.Context, id int) error
}

type store interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, in any) error
}

type repositoryImpl struct {
	store store
}

// NewRepository returns a catalog repository bound to the key/value store.
func NewRepository(kv *kvstore.Store) Repository {
	return &repositoryImpl{store: kv}
}

// List returns the stored catalog, writing the seed set on first access.
func (r *repositoryImpl) List(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	found, err := r.store.GetJSON(ctx, kvstore.KeyMovies, &movies)
	if err != nil {
		return nil, err
	}
	if !found {
		movies = seedMovies()
		if err := r.store.SetJSON(ctx, kvstore.KeyMovies, movies); err != nil {
			return nil, err
		}
	}
	return movies, nil
}

// Add prepends movie. Inserting an id that already exists is a no-op.
func (r *repositoryImpl) Add(ctx context.Context, movie Movie) error {
	movies, err := r.List(ctx)
	if err != nil {
		return err
	}
	for _, existing := range movies {
		if existing.ID == movie.ID {
			return nil
		}
	}
	updated := append([]Movie{movie}, movies...)
	return r.store.SetJSON(ctx, kvstore.KeyMovies, updated)
}

// Update replaces the record with a matching id in place. Unknown ids
// are silently ignored.
func (r *repositoryImpl) Update(ctx context.Context, movie Movie) error {
	movies, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i, existing := range movies {
		if existing.ID == movie.ID {
			movies[i] = movie
			return r.store.SetJSON(ctx, kvstore.KeyMovies, movies)
		}
	}
	return nil
}

// Remove filters out the matching id. Unknown ids are silently ignored.
func (r *repositoryImpl) Remove(ctx context.Context, id int) error {
	movies, err := r.List(ctx)
	if err != nil {
		return err
	}
	filtered := movies[:0:0]
	removed := false
	for _, existing := range movies {
		if existing.ID == id {
			removed = true
			continue
		}
		filtered = append(filtered, existing)
	}
	if !removed {
		return nil
	}
	if filtered == nil {
		filtered = []Movie{}
	}
	return r.store.SetJSON(ctx, kvstore.KeyMovies, filtered)
}
