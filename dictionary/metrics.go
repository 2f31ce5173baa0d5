package dictionary

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/opcua-lads/labstreams/metric"
)

// catalogMetrics holds Prometheus metrics for the reference catalog.
type catalogMetrics struct {
	edgesAdded     prometheus.Counter
	edgesDuplicate prometheus.Counter
	idsUnresolved  prometheus.Counter
}

// NewMetrics creates and registers catalog metrics. Returns nil when no
// registry is provided (nil input = nil feature pattern).
func NewMetrics(registry *metric.MetricsRegistry) *catalogMetrics {
	if registry == nil {
		return nil
	}

	m := &catalogMetrics{
		edgesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "labstreams",
			Subsystem: "dictionary",
			Name:      "edges_added_total",
			Help:      "Annotation edges attached to device-graph nodes",
		}),
		edgesDuplicate: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "labstreams",
			Subsystem: "dictionary",
			Name:      "edges_duplicate_total",
			Help:      "Reference additions skipped because the edge already existed",
		}),
		idsUnresolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "labstreams",
			Subsystem: "dictionary",
			Name:      "ids_unresolved_total",
			Help:      "Concept ids with no dictionary entry",
		}),
	}

	_ = registry.RegisterCounter("dictionary", "edges_added", m.edgesAdded)
	_ = registry.RegisterCounter("dictionary", "edges_duplicate", m.edgesDuplicate)
	_ = registry.RegisterCounter("dictionary", "ids_unresolved", m.idsUnresolved)

	return m
}

func (m *catalogMetrics) incAdded() {
	if m != nil {
		m.edgesAdded.Inc()
	}
}

func (m *catalogMetrics) incDuplicate() {
	if m != nil {
		m.edgesDuplicate.Inc()
	}
}

func (m *catalogMetrics) incUnresolved() {
	if m != nil {
		m.idsUnresolved.Inc()
	}
}
