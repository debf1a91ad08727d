package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts dispatch outcomes.
type Metrics struct {
	Dispatched *prometheus.CounterVec
}

// NewMetrics registers notification metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Dispatched: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "sunsetguide_notifications_total",
			Help: "Notification send attempts by type and result",
		}, []string{"type", "result"}), // result: "sent", "failed"
	}
}

func (m *Metrics) observe(t Type, err error) {
	if m == nil {
		return
	}
	result := "sent"
	if err != nil {
		result = "failed"
	}
	m.Dispatched.WithLabelValues(string(t), result).Inc()
}
