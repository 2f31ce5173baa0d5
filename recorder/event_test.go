package recorder

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opcua-lads/labstreams/devicemodel"
	"github.com/opcua-lads/labstreams/errors"
)

func TestEventOrdering(t *testing.T) {
	emitter := devicemodel.NewEventEmitter()
	rec, err := NewEventRecorder("events", emitter)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		emitter.Emit(devicemodel.Event{
			Timestamp:  time.Now(),
			Severity:   i,
			Message:    "notification",
			SourceName: "ReactorUnit",
		})
	}
	rec.Stop()

	records := rec.Records()
	require.Len(t, records, 5)
	for i, record := range records {
		assert.Equal(t, float64(i+1), record.Values[0].Number)
	}
}

func TestEventDefaults(t *testing.T) {
	emitter := devicemodel.NewEventEmitter()
	rec, err := NewEventRecorder("events", emitter)
	require.NoError(t, err)

	emitter.Emit(devicemodel.Event{})
	rec.Stop()

	record, ok := rec.LastRecord()
	require.True(t, ok)
	assert.False(t, record.Timestamp.IsZero())
	assert.Equal(t, 0.0, record.Values[0].Number)
	assert.Equal(t, DefaultEventMessage, record.Values[1].Text)
	assert.Equal(t, DefaultEventSource, record.Values[2].Text)
}

func TestEventRecorderStopIsIdempotent(t *testing.T) {
	emitter := devicemodel.NewEventEmitter()
	rec, err := NewEventRecorder("events", emitter)
	require.NoError(t, err)

	rec.Stop()
	rec.Stop()

	// Events after the subscription is dropped produce no records.
	emitter.Emit(devicemodel.Event{Message: "late"})
	_, ok := rec.LastRecord()
	assert.False(t, ok)
}

func TestEventRecorderClosedSource(t *testing.T) {
	emitter := devicemodel.NewEventEmitter()
	rec, err := NewEventRecorder("events", emitter)
	require.NoError(t, err)

	emitter.Emit(devicemodel.Event{Severity: 2, Message: "alarm", SourceName: "Heater"})
	emitter.Close()
	rec.Stop()

	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "alarm", records[0].Values[1].Text)
}

func TestEventCSV(t *testing.T) {
	emitter := devicemodel.NewEventEmitter()
	rec, err := NewEventRecorder("events", emitter)
	require.NoError(t, err)

	emitter.Emit(devicemodel.Event{Severity: 3, Message: "overtemp", SourceName: "Heater"})
	rec.Stop()

	csv := rec.CSVString()
	lines := strings.Split(strings.TrimSuffix(csv, "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Timestamp","Severity","Message","Source"`, lines[0])
	assert.True(t, strings.HasSuffix(lines[1], `,3,"overtemp","Heater"`))

	assert.Nil(t, rec.Tracks())
}

type failingSource struct{}

func (failingSource) Subscribe() (<-chan devicemodel.Event, func(), error) {
	return nil, nil, errors.ErrSubscriptionFailed
}

func TestEventRecorderSubscribeFailure(t *testing.T) {
	_, err := NewEventRecorder("events", failingSource{})
	require.Error(t, err)
	assert.True(t, errors.IsTransient(err))
}

func TestEventRecorderGeneratedID(t *testing.T) {
	emitter := devicemodel.NewEventEmitter()
	rec, err := NewEventRecorder("", emitter)
	require.NoError(t, err)
	defer rec.Stop()

	assert.NotEmpty(t, rec.ID())
}
