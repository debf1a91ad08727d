package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the submission pipeline.
type Metrics struct {
	// Pipeline outcomes by form and final state
	Outcomes *prometheus.CounterVec

	// Notification failures after a successful persist, by form
	NotifyFailures *prometheus.CounterVec

	// Full validate -> persist -> notify latency by form
	PipelineLatency *prometheus.HistogramVec
}

// New registers submission metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sunsetguide_submissions_total",
			Help: "Form submissions by form and final pipeline state",
		}, []string{"form", "state"}),

		NotifyFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sunsetguide_submission_notify_failures_total",
			Help: "Stored submissions whose notification could not be sent",
		}, []string{"form"}),

		PipelineLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sunsetguide_submission_duration_seconds",
			Help:    "Duration of the submission pipeline including notification",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"form"}),
	}
}

// IncrementOutcome records the final state of one attempt.
func (m *Metrics) IncrementOutcome(form, state string) {
	if m != nil {
		m.Outcomes.WithLabelValues(form, state).Inc()
	}
}

// IncrementNotifyFailure records a notification that failed after persist.
func (m *Metrics) IncrementNotifyFailure(form string) {
	if m != nil {
		m.NotifyFailures.WithLabelValues(form).Inc()
	}
}

// ObservePipelineLatency records the duration since start.
func (m *Metrics) ObservePipelineLatency(form string, start time.Time) {
	if m != nil {
		m.PipelineLatency.WithLabelValues(form).Observe(time.Since(start).Seconds())
	}
}
