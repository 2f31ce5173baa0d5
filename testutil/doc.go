// Package testutil provides shared fixtures for labstreams tests and the
// demo binary: a fully populated sample device tree and a dictionary
// namespace covering every default concept.
package testutil
