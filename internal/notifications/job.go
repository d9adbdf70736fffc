package notifications

import (
	"context"
	"sync/atomic"

	"github.com/myflixlabs/myflix-backend/pkg/auth/session"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
	"github.com/myflixlabs/myflix-backend/pkg/metrics"
)

// RefreshJobName identifies the notification poll job in logs/metrics.
const RefreshJobName = "notifications-refresh"

type sessionReader interface {
	Current(ctx context.Context) (*session.Record, bool, error)
}

// RefreshJob recomputes the unread count for the active session on
// every poll tick and publishes it as a gauge.
type RefreshJob struct {
	svc      Service
	sessions sessionReader
	metrics  *metrics.PollJobMetrics
	last     atomic.Int64
}

// NewRefreshJob wires the poll job.
func NewRefreshJob(svc Service, sessions sessionReader, m *metrics.PollJobMetrics) (*RefreshJob, error) {
	if svc == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifications service required")
	}
	if sessions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "session reader required")
	}
	return &RefreshJob{svc: svc, sessions: sessions, metrics: m}, nil
}

func (j *RefreshJob) Name() string {
	return RefreshJobName
}

func (j *RefreshJob) Run(ctx context.Context) error {
	rec, found, err := j.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if !found {
		j.last.Store(0)
		j.metrics.SetUnread("viewer", 0)
		return nil
	}

	count, err := j.svc.UnreadCount(ctx, rec.UserID)
	if err != nil {
		return err
	}
	j.last.Store(int64(count))
	j.metrics.SetUnread("viewer", count)
	return nil
}

// LastUnread returns the count computed by the most recent tick.
func (j *RefreshJob) LastUnread() int {
	return int(j.last.Load())
}
