// Package metric manages Prometheus metrics for labstreams components.
//
// A MetricsRegistry owns one prometheus.Registry plus the platform core
// metrics, and hands out namespaced registration to components. Components
// follow the nil-registry = nil-feature pattern: constructors accept a
// *MetricsRegistry and return nil metrics when none is provided, so
// instrumentation is optional everywhere.
//
// The HTTP handler exposes the registry for scraping alongside a trivial
// health endpoint.
package metric
