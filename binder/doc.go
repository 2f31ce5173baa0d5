// Package binder attaches default ontology references across a device-model
// subtree.
//
// Dispatch is a closed per-role handler table keyed by the node's structural
// role, not a hardcoded node-type list: nodes whose role has no handler are
// skipped silently, and every step inside a handler is null-guarded
// independently, so partially populated device models bind whatever is
// present and ignore the rest. Binding is idempotent — re-binding a subtree
// adds no new edges — and never raises: with an inert catalog every call is
// a no-op.
package binder
