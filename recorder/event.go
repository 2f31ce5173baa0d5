package recorder

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/opcua-lads/labstreams/devicemodel"
	"github.com/opcua-lads/labstreams/errors"
)

// Defaults substituted for missing event fields. An incomplete notification
// is recorded, never rejected.
const (
	DefaultEventMessage = "(no message)"
	DefaultEventSource  = "(unknown source)"
)

// eventHeaders is the fixed column set of every event recorder.
var eventHeaders = []string{"Severity", "Message", "Source"}

// EventRecorder accumulates one record per notification from an
// asynchronous event stream. The subscription channel is drained by a
// single goroutine, so records keep arrival order; a mutex only guards the
// hand-off between that goroutine and readers.
type EventRecorder struct {
	id     string
	logger *slog.Logger

	mu      sync.Mutex
	records []Record

	cancel  func()
	stopped chan struct{}
	done    chan struct{}
	metrics *recorderMetrics
}

// NewEventRecorder subscribes to the event source and starts recording. An
// empty identifier gets a generated one. The returned recorder must be
// stopped to release the subscription.
func NewEventRecorder(id string, source devicemodel.EventSource, opts ...Option) (*EventRecorder, error) {
	o := applyOptions(opts)
	if id == "" {
		id = uuid.NewString()
	}

	ch, cancel, err := source.Subscribe()
	if err != nil {
		return nil, errors.WrapTransient(err, "EventRecorder", "NewEventRecorder",
			"subscribing to event source")
	}

	r := &EventRecorder{
		id:      id,
		logger:  o.logger,
		cancel:  cancel,
		stopped: make(chan struct{}),
		done:    make(chan struct{}),
		metrics: o.metrics,
	}

	go r.drain(ch)
	return r, nil
}

// drain consumes the subscription until it closes or the recorder stops.
// One consumer, arrival order preserved.
func (r *EventRecorder) drain(ch <-chan devicemodel.Event) {
	defer close(r.done)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			r.append(ev)
		case <-r.stopped:
			// Flush notifications already delivered before honoring the stop.
			for {
				select {
				case ev, ok := <-ch:
					if !ok {
						return
					}
					r.append(ev)
				default:
					return
				}
			}
		}
	}
}

func (r *EventRecorder) append(ev devicemodel.Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	if ev.Message == "" {
		ev.Message = DefaultEventMessage
	}
	if ev.SourceName == "" {
		ev.SourceName = DefaultEventSource
	}

	record := Record{
		Timestamp: ev.Timestamp,
		Values: []devicemodel.Variant{
			devicemodel.NumberVariant(float64(ev.Severity)),
			devicemodel.TextVariant(ev.Message),
			devicemodel.TextVariant(ev.SourceName),
		},
	}

	r.mu.Lock()
	r.records = append(r.records, record)
	r.mu.Unlock()
	r.metrics.incEvents()
}

// Stop unsubscribes and waits for the drain goroutine to finish. There is
// no in-flight record to cancel; events delivered before Stop are all
// recorded. Safe to call more than once.
func (r *EventRecorder) Stop() {
	select {
	case <-r.stopped:
	default:
		close(r.stopped)
	}
	r.cancel()
	<-r.done
}

// ID returns the recorder identifier.
func (r *EventRecorder) ID() string {
	return r.id
}

// Tracks returns nil: event recorders have no track list, only the fixed
// event-field columns.
func (r *EventRecorder) Tracks() []*Track {
	return nil
}

// Records returns the records captured so far, in arrival order.
func (r *EventRecorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Record(nil), r.records...)
}

// LastRecord returns the most recent record. The second result is false
// when nothing has been recorded yet; callers must check it.
func (r *EventRecorder) LastRecord() (Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.records) == 0 {
		return Record{}, false
	}
	return r.records[len(r.records)-1], true
}

// Headers returns the fixed event-field column labels.
func (r *EventRecorder) Headers() []string {
	return append([]string(nil), eventHeaders...)
}

// CSVString renders the event records as delimited text over the fixed
// event-field columns.
func (r *EventRecorder) CSVString() string {
	return renderCSV(r.Headers(), r.Records())
}
