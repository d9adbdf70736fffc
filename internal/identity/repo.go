package identity

import (
	"context"

	"github.com/myflixlabs/myflix-backend/pkg/kvstore"
)

// Repository persists the user collection as one document under a
// fixed key. There is no remove path; accounts are never deleted.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	FindByUID(ctx context.Context, uid string) (*User, bool, error)
	FindByEmail(ctx context.Context, email string) (*User, bool, error)
	Update(ctx context.Context, user User) error
	Append(ctx context.Context, user User) error
}

type store interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, in any) error
}

type repositoryImpl struct {
	store store
}

// NewRepository returns an identity repository bound to the key/value store.
func NewRepository(kv *kvstore.Store) Repository {
	return &repositoryImpl{store: kv}
}

// List returns the stored accounts, writing the seed pair on first access.
func (r *repositoryImpl) List(ctx context.Context) ([]User, error) {
	var users []User
	found, err := r.store.GetJSON(ctx, kvstore.KeyUsers, &users)
	if err != nil {
		return nil, err
	}
	if !found {
		users = seedUsers()
		if err := r.store.SetJSON(ctx, kvstore.KeyUsers, users); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (r *repositoryImpl) FindByUID(ctx context.Context, uid string) (*User, bool, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, user := range users {
		if user.UID == uid {
			return &user, true, nil
		}
	}
	return nil, false, nil
}

// FindByEmail returns the first account with an exact email match.
func (r *repositoryImpl) FindByEmail(ctx context.Context, email string) (*User, bool, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, user := range users {
		if user.Email == email {
			return &user, true, nil
		}
	}
	return nil, false, nil
}

// Update replaces the record with a matching uid. Unknown uids are
// silently ignored.
func (r *repositoryImpl) Update(ctx context.Context, user User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i, existing := range users {
		if existing.UID == user.UID {
			users[i] = user
			return r.store.SetJSON(ctx, kvstore.KeyUsers, users)
		}
	}
	return nil
}

// Append adds a freshly provisioned account to the end of the collection.
func (r *repositoryImpl) Append(ctx context.Context, user User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, user)
	return r.store.SetJSON(ctx, kvstore.KeyUsers, users)
}
