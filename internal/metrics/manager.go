package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis outcomes
const (
	OutcomeSuccess         = "success"
	OutcomeUpstreamError   = "upstream_error"
	OutcomeParseError      = "parse_error"
	OutcomeValidationError = "validation_error"
)

type Manager struct {
	// counters
	CounterRequests *prometheus.CounterVec
	CounterAnalyses *prometheus.CounterVec

	// histograms
	HistUpstreamDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("fitsmart", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitsmart", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "The total number of incoming requests",
		}, []string{"method", "status"}),
		CounterAnalyses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "analyses_total",
			Help:      "The total number of meal photo analyses by outcome",
		}, []string{"provider", "outcome"}),
		HistUpstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "upstream_duration_seconds",
			Help:      "Latency of vision provider calls",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
		}, []string{"provider"}),
	}
}

// ObserveAnalysis records one analysis attempt. A nil manager is a no-op.
func (m *Manager) ObserveAnalysis(provider, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.CounterAnalyses.WithLabelValues(provider, outcome).Inc()
	m.HistUpstreamDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}
