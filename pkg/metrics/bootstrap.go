package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BootstrapMetrics records migration and seed runs.
type BootstrapMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewBootstrapMetrics registers the bootstrap metrics on the provided
// registerer. A nil registerer yields a no-op recorder.
func NewBootstrapMetrics(reg prometheus.Registerer) *BootstrapMetrics {
	if reg == nil {
		return &BootstrapMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bootstrap_step_duration_seconds",
		Help:    "Duration of schema bootstrap steps in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"step"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bootstrap_step_success",
		Help: "Successful schema bootstrap steps.",
	}, []string{"step"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bootstrap_step_failure",
		Help: "Failed schema bootstrap steps.",
	}, []string{"step"})
	reg.MustRegister(duration, success, failure)
	return &BootstrapMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named step.
func (b *BootstrapMetrics) ObserveDuration(step string, duration time.Duration) {
	if b == nil || b.duration == nil {
		return
	}
	b.duration.WithLabelValues(normalizeLabel(step)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named step.
func (b *BootstrapMetrics) IncSuccess(step string) {
	if b == nil || b.success == nil {
		return
	}
	b.success.WithLabelValues(normalizeLabel(step)).Inc()
}

// IncFailure increments the failure counter for the named step.
func (b *BootstrapMetrics) IncFailure(step string) {
	if b == nil || b.failure == nil {
		return
	}
	b.failure.WithLabelValues(normalizeLabel(step)).Inc()
}

func normalizeLabel(step string) string {
	if step == "" {
		return "unknown"
	}
	return step
}
