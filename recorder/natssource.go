package recorder

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/opcua-lads/labstreams/devicemodel"
	"github.com/opcua-lads/labstreams/errors"
)

// NATSEventSource adapts a NATS subject subscription into a
// devicemodel.EventSource, for device runtimes that publish their
// notifications onto a broker instead of surfacing them in-process.
// Payloads are JSON-encoded devicemodel.Event documents; a malformed
// payload is recorded with default fields rather than dropped.
type NATSEventSource struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewNATSEventSource creates an event source over the given connection and
// subject. The connection is borrowed, not owned; closing it is the
// caller's concern.
func NewNATSEventSource(conn *nats.Conn, subject string, logger *slog.Logger) *NATSEventSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &NATSEventSource{
		conn:    conn,
		subject: subject,
		logger:  logger,
	}
}

// Subscribe implements devicemodel.EventSource. Messages are decoded and
// pushed onto a single-consumer channel in delivery order; the cancel
// function unsubscribes.
func (s *NATSEventSource) Subscribe() (<-chan devicemodel.Event, func(), error) {
	if s.conn == nil {
		return nil, nil, errors.WrapTransient(errors.ErrNoConnection,
			"NATSEventSource", "Subscribe", "checking connection")
	}

	ch := make(chan devicemodel.Event, 64)

	sub, err := s.conn.Subscribe(s.subject, func(msg *nats.Msg) {
		var ev devicemodel.Event
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			s.logger.Warn("malformed event payload, recording with defaults",
				"subject", s.subject, "error", err)
			ev = devicemodel.Event{}
		}
		if ev.Timestamp.IsZero() {
			ev.Timestamp = time.Now()
		}
		select {
		case ch <- ev:
		default:
			s.logger.Warn("event channel full, dropping notification",
				"subject", s.subject)
		}
	})
	if err != nil {
		return nil, nil, errors.WrapTransient(
			fmt.Errorf("%w: %w", errors.ErrSubscriptionFailed, err),
			"NATSEventSource", "Subscribe", "subscribing to subject")
	}

	// The channel is deliberately left open on cancel: a delivery callback
	// may still be executing when Unsubscribe returns, and a send on a
	// closed channel would panic. Consumers select on their own stop signal
	// as well as the channel.
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			if err := sub.Unsubscribe(); err != nil {
				s.logger.Warn("unsubscribe failed", "subject", s.subject, "error", err)
			}
		})
	}
	return ch, cancel, nil
}
