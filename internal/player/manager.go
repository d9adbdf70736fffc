package player

import (
	"context"
	"sync"

	"github.com/myflixlabs/myflix-backend/internal/catalog"
	"github.com/myflixlabs/myflix-backend/internal/identity"
	"github.com/myflixlabs/myflix-backend/pkg/enums"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
)

type sourceResolver interface {
	ResolveSource(ctx context.Context, movieID int) (string, error)
}

// Manager owns the single active playback session. Starting a new one
// tears down whatever was playing before.
type Manager struct {
	mu       sync.Mutex
	settings sourceResolver
	current  *Session
	cancel   context.CancelFunc
}

// NewManager wires player dependencies.
func NewManager(settings sourceResolver) (*Manager, error) {
	if settings == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "settings resolver required")
	}
	return &Manager{settings: settings}, nil
}

// CanWatch reports whether user may play movie. Premium titles need a
// premium plan or an elevated role.
func CanWatch(movie catalog.Movie, user identity.User) bool {
	if !movie.IsPremium {
		return true
	}
	return user.PlanStatus == enums.PlanStatusPremium || user.Role.IsElevated()
}

// Start opens a session for movie on behalf of user and begins the
// tick loop. The returned snapshot is the opening state.
func (m *Manager) Start(ctx context.Context, movie catalog.Movie, user identity.User) (Snapshot, error) {
	if !CanWatch(movie, user) {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeForbidden, "premium plan required for this title")
	}

	sourceURL, err := m.settings.ResolveSource(ctx, movie.ID)
	if err != nil {
		return Snapshot{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		m.cancel()
	}

	// free-plan viewers see ads on non-premium titles
	showAds := user.PlanStatus == enums.PlanStatusFree && !movie.IsPremium
	sess := newSession(movie.ID, sourceURL, showAds)
	runCtx, cancel := context.WithCancel(context.Background())
	m.current = sess
	m.cancel = cancel
	go sess.Run(runCtx)

	return sess.Snapshot(), nil
}

// Current returns the active session.
func (m *Manager) Current() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no active playback session")
	}
	return m.current, nil
}

// Stop tears down the active session.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.current = nil
}
