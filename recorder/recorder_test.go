package recorder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opcua-lads/labstreams/devicemodel"
	"github.com/opcua-lads/labstreams/metric"
	"github.com/opcua-lads/labstreams/testutil"
)

func sampleRecorder(t *testing.T) (*Recorder, *devicemodel.Value, *devicemodel.Value) {
	t.Helper()
	device := testutil.SampleDevice()
	temp := testutil.SensorValue(device, "Temperature")
	target := testutil.HeaterValue(device, devicemodel.NameTargetValue)
	require.NotNil(t, temp)
	require.NotNil(t, target)
	return NewRecorder("run-1", []*devicemodel.Value{temp, target}), temp, target
}

func TestCreateRecordCapturesCurrentValues(t *testing.T) {
	rec, temp, target := sampleRecorder(t)

	first := rec.CreateRecord()
	require.Len(t, first.Values, 2)
	assert.Equal(t, 21.5, first.Values[0].Number)
	assert.Equal(t, 37.0, first.Values[1].Number)

	temp.Write(devicemodel.NumberVariant(25.0))
	target.Write(devicemodel.NumberVariant(40.0))

	second := rec.CreateRecord()
	assert.Equal(t, 25.0, second.Values[0].Number)
	assert.Equal(t, 40.0, second.Values[1].Number)

	// First record is untouched: capture happens at call time only.
	assert.Equal(t, 21.5, rec.Records()[0].Values[0].Number)
	assert.False(t, second.Timestamp.Before(first.Timestamp))
}

func TestLastRecord(t *testing.T) {
	rec, _, _ := sampleRecorder(t)

	_, ok := rec.LastRecord()
	assert.False(t, ok)

	rec.CreateRecord()
	rec.CreateRecord()
	last, ok := rec.LastRecord()
	require.True(t, ok)
	assert.Equal(t, rec.Records()[1], last)
}

func TestTrackValuesBySourceIdentity(t *testing.T) {
	rec, temp, _ := sampleRecorder(t)
	rec.CreateRecord()
	rec.CreateRecord()
	rec.CreateRecord()

	values, ok := rec.TrackValues(rec.Tracks()[0])
	require.True(t, ok)
	require.Len(t, values, 3)
	assert.Equal(t, 21.5, values[0].Number)

	// A track built over the same source matches by identity.
	rebuilt := NewTrack(temp, TrackOptions{})
	_, ok = rec.TrackValues(rebuilt)
	assert.True(t, ok)

	// A same-named source on a different node does not.
	other := &devicemodel.Value{
		Name: devicemodel.NameSensorValue, NodeName: "Temperature",
		Analog: true, Kind: devicemodel.KindNumeric,
	}
	foreign := NewTrack(other, TrackOptions{})
	values, ok = rec.TrackValues(foreign)
	assert.False(t, ok)
	assert.Nil(t, values)

	_, ok = rec.TrackValues(nil)
	assert.False(t, ok)
}

func TestCSVShape(t *testing.T) {
	rec, _, _ := sampleRecorder(t)
	rec.CreateRecord()
	rec.CreateRecord()
	rec.CreateRecord()

	csv := rec.CSVString()
	assert.True(t, strings.HasSuffix(csv, "\r\n"))

	lines := strings.Split(strings.TrimSuffix(csv, "\r\n"), "\r\n")
	require.Len(t, lines, 4) // 1 header + 3 data rows

	header := lines[0]
	assert.Equal(t,
		`"Timestamp","Temperature.SensorValue [degC]","Heater.TargetValue [degC]"`,
		header)

	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		assert.Len(t, fields, 3)
		// Numbers are bare, not quoted.
		assert.False(t, strings.HasPrefix(fields[1], `"`))
	}

	// Pure and repeatable.
	assert.Equal(t, csv, rec.CSVString())
}

func TestCSVQuotesTextValues(t *testing.T) {
	state := &devicemodel.Value{
		Name: devicemodel.NameCurrentState, NodeName: "StateMachine",
		Kind: devicemodel.KindText,
	}
	state.Write(devicemodel.TextVariant("Running"))

	rec := NewRecorder("states", []*devicemodel.Value{state})
	rec.CreateRecord()

	lines := strings.Split(strings.TrimSuffix(rec.CSVString(), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[1], `,"Running"`))
}

func TestGeneratedIdentifier(t *testing.T) {
	rec := NewRecorder("", nil)
	assert.NotEmpty(t, rec.ID())

	other := NewRecorder("", nil)
	assert.NotEqual(t, rec.ID(), other.ID())
}

func TestNilSourcesDropped(t *testing.T) {
	device := testutil.SampleDevice()
	temp := testutil.SensorValue(device, "Temperature")

	rec := NewRecorder("run", []*devicemodel.Value{nil, temp, nil})
	require.Len(t, rec.Tracks(), 1)
	assert.Equal(t, temp, rec.Tracks()[0].Source())
}

func TestRecorderMetrics(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	rec, _, _ := sampleRecorderWithMetrics(t, registry)

	rec.CreateRecord()
	rec.CreateRecord()

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "labstreams_recorder_records_captured_total" {
			assert.Equal(t, 2.0, f.GetMetric()[0].GetCounter().GetValue())
			return
		}
	}
	t.Fatal("records_captured metric not found")
}

func sampleRecorderWithMetrics(t *testing.T, registry *metric.MetricsRegistry) (*Recorder, *devicemodel.Value, *devicemodel.Value) {
	t.Helper()
	device := testutil.SampleDevice()
	temp := testutil.SensorValue(device, "Temperature")
	target := testutil.HeaterValue(device, devicemodel.NameTargetValue)
	rec := NewRecorder("run-m", []*devicemodel.Value{temp, target},
		WithMetrics(NewMetrics(registry)))
	return rec, temp, target
}
