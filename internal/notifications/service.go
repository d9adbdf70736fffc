package notifications

import (
	"context"
	"strings"
	"time"

	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
)

// Service defines notification send/read operations. Visibility is
// computed here, not in the repository.
type Service interface {
	ListFor(ctx context.Context, uid string) ([]Notification, error)
	UnreadCount(ctx context.Context, uid string) (int, error)
	Send(ctx context.Context, title, message, target string) (*Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService wires notification dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifications repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

// ListFor returns the entries visible to uid: broadcasts plus entries
// targeted at that uid, newest first.
func (s *service) ListFor(ctx context.Context, uid string) ([]Notification, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "uid required")
	}
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := []Notification{}
	for _, note := range notes {
		if note.VisibleTo(uid) {
			visible = append(visible, note)
		}
	}
	return visible, nil
}

func (s *service) UnreadCount(ctx context.Context, uid string) (int, error) {
	visible, err := s.ListFor(ctx, uid)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, note := range visible {
		if !note.Read {
			count++
		}
	}
	return count, nil
}

func (s *service) Send(ctx context.Context, title, message, target string) (*Notification, error) {
	if strings.TrimSpace(title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title required")
	}
	if strings.TrimSpace(message) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message required")
	}
	if strings.TrimSpace(target) == "" {
		target = TargetAll
	}
	return s.repo.Add(ctx, title, message, target, s.now())
}

func (s *service) MarkRead(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "notification id required")
	}
	return s.repo.MarkRead(ctx, id)
}
