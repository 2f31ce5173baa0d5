package recorder

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/opcua-lads/labstreams/metric"
)

// recorderMetrics holds Prometheus metrics shared by the recorder variants.
type recorderMetrics struct {
	recordsCaptured prometheus.Counter
	eventsRecorded  prometheus.Counter
}

// NewMetrics creates and registers recording metrics. Returns nil when no
// registry is provided (nil input = nil feature pattern).
func NewMetrics(registry *metric.MetricsRegistry) *recorderMetrics {
	if registry == nil {
		return nil
	}

	m := &recorderMetrics{
		recordsCaptured: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "labstreams",
			Subsystem: "recorder",
			Name:      "records_captured_total",
			Help:      "Sampled records captured across all recorders",
		}),
		eventsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "labstreams",
			Subsystem: "recorder",
			Name:      "events_recorded_total",
			Help:      "Event notifications turned into records",
		}),
	}

	_ = registry.RegisterCounter("recorder", "records_captured", m.recordsCaptured)
	_ = registry.RegisterCounter("recorder", "events_recorded", m.eventsRecorded)

	return m
}

func (m *recorderMetrics) incRecords() {
	if m != nil {
		m.recordsCaptured.Inc()
	}
}

func (m *recorderMetrics) incEvents() {
	if m != nil {
		m.eventsRecorded.Inc()
	}
}
