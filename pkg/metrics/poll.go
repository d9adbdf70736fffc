package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PollJobMetrics records metadata for the background poll jobs.
type PollJobMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	unread   *prometheus.GaugeVec
}

// NewPollJobMetrics registers the poll job metrics on the provided registerer.
func NewPollJobMetrics(reg prometheus.Registerer) *PollJobMetrics {
	if reg == nil {
		return &PollJobMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "job_duration_seconds",
		Help:    "Duration of poll jobs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "job_success",
		Help: "Successful poll job executions.",
	}, []string{"job"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "job_failure",
		Help: "Failed poll job executions.",
	}, []string{"job"})
	unread := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "notifications_unread",
		Help: "Unread notifications visible to the active viewer.",
	}, []string{"audience"})
	reg.MustRegister(duration, success, failure, unread)
	return &PollJobMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		unread:   unread,
	}
}

// ObserveDuration records the duration for the named job.
func (p *PollJobMetrics) ObserveDuration(job string, duration time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(normalizeLabel(job)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named job.
func (p *PollJobMetrics) IncSuccess(job string) {
	if p == nil || p.success == nil {
		return
	}
	p.success.WithLabelValues(normalizeLabel(job)).Inc()
}

// IncFailure increments the failure counter for the named job.
func (p *PollJobMetrics) IncFailure(job string) {
	if p == nil || p.failure == nil {
		return
	}
	p.failure.WithLabelValues(normalizeLabel(job)).Inc()
}

// SetUnread records the current unread notification count for an audience.
func (p *PollJobMetrics) SetUnread(audience string, count int) {
	if p == nil || p.unread == nil {
		return
	}
	p.unread.WithLabelValues(normalizeLabel(audience)).Set(float64(count))
}

func normalizeLabel(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
