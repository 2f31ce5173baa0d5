// Package devicemodel defines the boundary to the hierarchical device-graph
// runtime: structural node roles, typed readable/writable values, annotation
// edges to external dictionary concepts, and asynchronous event sources.
//
// # Role Classification
//
// Every node carries a closed structural Role (Device, FunctionalUnit,
// SensorFunction, Result, ...). Consumers dispatch on the role rather than
// probing concrete node types, so partially populated or unrecognized
// substructures are skipped instead of failing.
//
// # Annotation Edges
//
// Nodes hold a set-keyed registry of annotation edges, each naming a
// dictionary concept IRI. Adding an edge is idempotent: AddReference reports
// EdgeExists for a duplicate instead of failing, and edges never alter the
// hierarchical topology.
//
// # Events
//
// EventSource delivers device events over a single-consumer channel in
// arrival order. Cancellation is the returned unsubscribe function; there is
// no in-flight event to cancel.
//
// The in-memory implementation in this package is the complete collaborator
// used by the binder, the recorders, and all tests. A production deployment
// substitutes the real object-graph runtime behind the same surface.
package devicemodel
