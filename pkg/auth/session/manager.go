package session

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/myflixlabs/myflix-backend/pkg/kvstore"
)

// Record is the durable session snapshot. One signed-in viewer at a
// time; signing in replaces whatever session came before.
type Record struct {
	AccessID    string `json:"access_id"`
	UserID      string `json:"uid"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Plan        string `json:"plan"`
	PlanExpires string `json:"plan_expires"`
	AvatarURL   string `json:"avatar_url"`
}

type sessionStore interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, in any) error
	Delete(ctx context.Context, key string) error
}

// Manager persists the active session in the key/value store so a
// restart or page refresh can restore it.
type Manager struct {
	store sessionStore
}

// AccessSessionChecker exposes the read-only surface needed by middleware.
type AccessSessionChecker interface {
	HasSession(ctx context.Context, accessID string) (bool, error)
}

func NewManager(store *kvstore.Store) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("kv store is required")
	}
	return &Manager{store: store}, nil
}

// Save records rec as the active session, replacing any previous one.
func (m *Manager) Save(ctx context.Context, rec Record) error {
	if strings.TrimSpace(rec.AccessID) == "" {
		return fmt.Errorf("access id is required")
	}
	if strings.TrimSpace(rec.UserID) == "" {
		return fmt.Errorf("user id is required")
	}
	return m.store.SetJSON(ctx, kvstore.KeySessionUser, rec)
}

// Current returns the active session if one exists.
func (m *Manager) Current(ctx context.Context) (*Record, bool, error) {
	var rec Record
	found, err := m.store.GetJSON(ctx, kvstore.KeySessionUser, &rec)
	if err != nil || !found {
		return nil, false, err
	}
	return &rec, true, nil
}

// Clear removes the active session. Tokens minted against it stop
// passing middleware checks immediately.
func (m *Manager) Clear(ctx context.Context) error {
	return m.store.Delete(ctx, kvstore.KeySessionUser)
}

// HasSession reports whether the provided access ID matches the active session.
func (m *Manager) HasSession(ctx context.Context, accessID string) (bool, error) {
	if strings.TrimSpace(accessID) == "" {
		return false, fmt.Errorf("access id is required")
	}
	rec, found, err := m.Current(ctx)
	if err != nil || !found {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(rec.AccessID), []byte(accessID)) == 1, nil
}

// NewAccessID produces a stable identifier used as the JWT jti and session key.
func NewAccessID() string {
	return uuid.NewString()
}
