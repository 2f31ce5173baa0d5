package export

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/opcua-lads/labstreams/metric"
)

// exporterMetrics holds Prometheus metrics for the export pipeline.
type exporterMetrics struct {
	artifactsWritten *prometheus.CounterVec
	writesFailed     prometheus.Counter
}

// NewMetrics creates and registers exporter metrics. Returns nil when no
// registry is provided (nil input = nil feature pattern).
func NewMetrics(registry *metric.MetricsRegistry) *exporterMetrics {
	if registry == nil {
		return nil
	}

	m := &exporterMetrics{
		artifactsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "labstreams",
			Subsystem: "export",
			Name:      "artifacts_written_total",
			Help:      "Export artifacts written durably, by mime type",
		}, []string{"mime_type"}),
		writesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "labstreams",
			Subsystem: "export",
			Name:      "writes_failed_total",
			Help:      "Artifact writes that failed with an I/O error",
		}),
	}

	_ = registry.PrometheusRegistry().Register(m.artifactsWritten)
	_ = registry.RegisterCounter("export", "writes_failed", m.writesFailed)

	return m
}

func (m *exporterMetrics) incWritten(mimeType string) {
	if m != nil {
		m.artifactsWritten.WithLabelValues(mimeType).Inc()
	}
}

func (m *exporterMetrics) incFailed() {
	if m != nil {
		m.writesFailed.Inc()
	}
}
