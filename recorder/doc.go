// Package recorder accumulates append-only, time-ordered records over live
// device-model values or an asynchronous event stream.
//
// # Tracks
//
// A Track binds one data source to a display label, engineering unit, and
// normalized value kind, derived once at construction and immutable after.
// Track identity is the bound source, not the label — labels may collide
// across different nodes.
//
// # Recorders
//
// The sampled Recorder holds a fixed ordered Track list; CreateRecord
// captures every track's current value at call time with a wall-clock
// timestamp. An external scheduler controls the cadence; the recorder never
// back-fills or looks ahead.
//
// The EventRecorder drains an EventSource subscription single-threaded in
// arrival order, producing one record per notification and defaulting any
// missing field rather than failing.
//
// Both variants export their records as CSV text. The CSV rendering is pure
// and repeatable; embedded quote and comma characters in values are not
// escaped. That is a known limitation of the format produced here — fixing
// it would change every downstream consumer's parsing, so it stays.
package recorder
