// Package export renders completed recorders into portable report artifacts
// and registers them back into the device graph.
//
// Two export kinds are recognized by mime type: a spreadsheet workbook (one
// sheet per recorder, bold header row, typed cells) and a JSON document.
// Building the in-memory report is synchronous; writing it to durable
// storage is the only I/O and the only operation here that fails hard. A
// result-file descriptor is created strictly after a successful write, so a
// failed write can never leave a descriptor pointing at content that does
// not exist.
package export
