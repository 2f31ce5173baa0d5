// Package labstreams provides semantic annotation, telemetry recording,
// and artifact export for laboratory device models.
//
// # Architecture
//
// Labstreams is organized around three concerns:
//
// Annotation:
//   - devicemodel: role-typed device trees with live values and events
//   - dictionary: namespace catalog resolving concept ids to dictionary entries
//   - binder: role-dispatched attachment of dictionary references
//
// Recording:
//   - recorder: sampled value recorders and channel-drained event recorders
//   - NATS intake for broker-delivered device events
//
// Export:
//   - export: spreadsheet workbooks, JSON reports, and result-file
//     descriptors registered back onto the device model
//
// The annotation layer is strictly best-effort: a device model whose
// dictionary namespace is unavailable still records and exports, it just
// carries no semantic references. Export I/O is the only surface that
// propagates hard failures.
//
// The cmd/labstreams binary wires the three layers over a built-in demo
// device model.
package labstreams
