// Package dictionary resolves symbolic ontology concept ids against a
// semantic dictionary namespace and attaches the resulting annotation edges
// onto device-graph nodes.
//
// # Probe-Once Semantics
//
// A Catalog probes the dictionary namespace exactly once, on first use. When
// the namespace is absent the catalog degrades to permanently inert: every
// later Resolve misses and every AddReferences call is a silent no-op for
// the rest of the process lifetime. There is no retry — device servers
// without a dictionary installed are a supported deployment, not an error.
//
// # Best-Effort Annotation
//
// AddReferences never fails and never rolls back. An unresolvable id logs a
// warning and the remaining ids still get their edges; a duplicate edge is
// informational. Device models are routinely partially populated, so
// annotation is best-effort throughout.
//
// Concept ids use dotted notation (e.g. "device.identity.manufacturer");
// the id constants consumed by the binder live in ids.go.
package dictionary
