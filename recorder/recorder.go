package recorder

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opcua-lads/labstreams/devicemodel"
)

// Record is one timestamped row of captured values. Length and order of
// Values are fixed to the owning recorder's track list.
type Record struct {
	Timestamp time.Time
	Values    []devicemodel.Variant
}

// Recorder accumulates sampled records over a fixed ordered Track list. The
// track set is fixed at construction; records are append-only, ordered by
// capture time. Sampling is invoked synchronously by an external scheduler,
// so the recorder itself holds no lock.
type Recorder struct {
	id      string
	tracks  []*Track
	records []Record
	logger  *slog.Logger
	metrics *recorderMetrics
}

// Option configures a recorder.
type Option func(*recorderOptions)

type recorderOptions struct {
	logger  *slog.Logger
	metrics *recorderMetrics
	track   TrackOptions
}

// WithLogger sets the recorder's structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *recorderOptions) {
		o.logger = logger
	}
}

// WithMetrics attaches recording metrics. Nil disables instrumentation.
func WithMetrics(metrics *recorderMetrics) Option {
	return func(o *recorderOptions) {
		o.metrics = metrics
	}
}

// WithTrackOptions sets the derivation options applied to every track.
func WithTrackOptions(track TrackOptions) Option {
	return func(o *recorderOptions) {
		o.track = track
	}
}

func applyOptions(opts []Option) recorderOptions {
	o := recorderOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewRecorder creates a sampled recorder over the given ordered sources. An
// empty identifier gets a generated one. Nil sources are dropped; the
// remaining order is preserved.
func NewRecorder(id string, sources []*devicemodel.Value, opts ...Option) *Recorder {
	o := applyOptions(opts)
	if id == "" {
		id = uuid.NewString()
	}

	tracks := make([]*Track, 0, len(sources))
	for _, source := range sources {
		if t := NewTrack(source, o.track); t != nil {
			tracks = append(tracks, t)
		}
	}

	return &Recorder{
		id:      id,
		tracks:  tracks,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// ID returns the recorder identifier.
func (r *Recorder) ID() string {
	return r.id
}

// Tracks returns the fixed ordered track list.
func (r *Recorder) Tracks() []*Track {
	return r.tracks
}

// Records returns the records captured so far, in capture order.
func (r *Recorder) Records() []Record {
	return r.records
}

// CreateRecord captures the current value of every track's source at call
// time with a wall-clock timestamp, appends the record, and returns it.
// Cost is O(#tracks); there is no back-fill or look-ahead.
func (r *Recorder) CreateRecord() Record {
	values := make([]devicemodel.Variant, len(r.tracks))
	for i, t := range r.tracks {
		values[i] = t.capture()
	}

	record := Record{Timestamp: time.Now(), Values: values}
	r.records = append(r.records, record)
	r.metrics.incRecords()
	return record
}

// LastRecord returns the most recent record. The second result is false
// when nothing has been recorded yet; callers must check it.
func (r *Recorder) LastRecord() (Record, bool) {
	if len(r.records) == 0 {
		return Record{}, false
	}
	return r.records[len(r.records)-1], true
}

// TrackValues projects one track's column across all records. The track is
// matched by source identity, not by display name, since names may collide
// across different nodes. A track that was never added to this recorder
// yields a warning log and an absent result.
func (r *Recorder) TrackValues(track *Track) ([]devicemodel.Variant, bool) {
	if track == nil {
		r.logger.Warn("track column lookup with nil track", "recorder", r.id)
		return nil, false
	}

	column := -1
	for i, t := range r.tracks {
		if t.Source() == track.Source() {
			column = i
			break
		}
	}
	if column == -1 {
		r.logger.Warn("track not registered with recorder",
			"recorder", r.id, "track", track.Name())
		return nil, false
	}

	values := make([]devicemodel.Variant, len(r.records))
	for i, rec := range r.records {
		values[i] = rec.Values[column]
	}
	return values, true
}

// Headers returns the column labels in track order.
func (r *Recorder) Headers() []string {
	headers := make([]string, len(r.tracks))
	for i, t := range r.tracks {
		headers[i] = t.Header()
	}
	return headers
}

// CSVString renders the records as delimited text. Pure and repeatable; see
// the package documentation for the escaping limitation.
func (r *Recorder) CSVString() string {
	return renderCSV(r.Headers(), r.records)
}
