package notifications

import (
	"context"
	"strconv"
	"time"

	"github.com/myflixlabs/myflix-backend/pkg/kvstore"
)

// Repository persists the notification log under a fixed key. The log
// starts empty; there is no seed and no delete path.
type Repository interface {
	List(ctx context.Context) ([]Notification, error)
	Add(ctx context.Context, title, message, target string, now time.Time) (*Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type store interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, in any) error
}

type repositoryImpl struct {
	store store
}

// NewRepository returns a notification repository bound to the key/value store.
func NewRepository(kv *kvstore.Store) Repository {
	return &repositoryImpl{store: kv}
}

// List returns the stored log, most recently created first.
func (r *repositoryImpl) List(ctx context.Context) ([]Notification, error) {
	var notes []Notification
	found, err := r.store.GetJSON(ctx, kvstore.KeyNotifications, &notes)
	if err != nil {
		return nil, err
	}
	if !found {
		return []Notification{}, nil
	}
	return notes, nil
}

// Add assigns a millisecond-timestamp id and prepends the entry. When
// two entries land in the same millisecond the id is bumped to stay
// unique.
func (r *repositoryImpl) Add(ctx context.Context, title, message, target string, now time.Time) (*Notification, error) {
	notes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	id := now.UnixMilli()
	for idTaken(notes, strconv.FormatInt(id, 10)) {
		id++
	}

	note := Notification{
		ID:         strconv.FormatInt(id, 10),
		Title:      title,
		Message:    message,
		Date:       now.UTC().Format(time.RFC3339),
		Read:       false,
		TargetUser: target,
	}
	updated := append([]Notification{note}, notes...)
	if err := r.store.SetJSON(ctx, kvstore.KeyNotifications, updated); err != nil {
		return nil, err
	}
	return &note, nil
}

// MarkRead flips read to true on the matching id. Unknown ids are
// silently ignored; the flag never resets.
func (r *repositoryImpl) MarkRead(ctx context.Context, id string) error {
	notes, err := r.List(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i, note := range notes {
		if note.ID == id && !note.Read {
			notes[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return r.store.SetJSON(ctx, kvstore.KeyNotifications, notes)
}

func idTaken(notes []Notification, id string) bool {
	for _, note := range notes {
		if note.ID == id {
			return true
		}
	}
	return false
}
