package recorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opcua-lads/labstreams/devicemodel"
)

func analogSource(node, name, unit string) *devicemodel.Value {
	return &devicemodel.Value{
		Name: name, NodeName: node, Unit: unit,
		Analog: true, Kind: devicemodel.KindNumeric,
	}
}

func TestTrackUnitDerivation(t *testing.T) {
	tests := []struct {
		name     string
		source   *devicemodel.Value
		expected string
	}{
		{
			name:     "numeric analog source carries its unit",
			source:   analogSource("Temperature", "SensorValue", "degC"),
			expected: "Temperature.SensorValue [degC]",
		},
		{
			name: "non-analog numeric source has no bracket suffix",
			source: &devicemodel.Value{
				Name: "SensorValue", NodeName: "Temperature",
				Unit: "degC", Analog: false, Kind: devicemodel.KindNumeric,
			},
			expected: "Temperature.SensorValue",
		},
		{
			name: "text source has no unit even when analog is set",
			source: &devicemodel.Value{
				Name: "CurrentState", NodeName: "StateMachine",
				Unit: "degC", Analog: true, Kind: devicemodel.KindText,
			},
			expected: "StateMachine.CurrentState",
		},
		{
			name: "unscoped source uses its own name",
			source: &devicemodel.Value{
				Name: "SensorValue", Kind: devicemodel.KindNumeric,
			},
			expected: "SensorValue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := NewTrack(tt.source, TrackOptions{})
			assert.Equal(t, tt.expected, track.Header())
		})
	}
}

func TestTrackShortNames(t *testing.T) {
	tests := []struct {
		sourceName string
		short      string
	}{
		{"SensorValue", "PV"},
		{"CurrentValue", "PV"},
		{"TargetValue", "SP"},
		{"ElapsedTime", "Heater.ElapsedTime"},
	}

	for _, tt := range tests {
		t.Run(tt.sourceName, func(t *testing.T) {
			source := analogSource("Heater", tt.sourceName, "")
			long := NewTrack(source, TrackOptions{})
			short := NewTrack(source, TrackOptions{ShortNames: true})

			assert.Equal(t, "Heater."+tt.sourceName, long.Name())
			assert.Equal(t, tt.short, short.Name())
		})
	}
}

func TestTrackImmutable(t *testing.T) {
	source := analogSource("Temperature", "SensorValue", "degC")
	track := NewTrack(source, TrackOptions{})

	// Later metadata changes on the source do not reach the track.
	source.Unit = "K"
	source.NodeName = "Renamed"

	assert.Equal(t, "Temperature.SensorValue [degC]", track.Header())
	assert.Equal(t, devicemodel.KindNumeric, track.Kind())
}

func TestTrackNilSource(t *testing.T) {
	assert.Nil(t, NewTrack(nil, TrackOptions{}))
}

func TestTrackCaptureNormalizesText(t *testing.T) {
	source := &devicemodel.Value{
		Name: "CurrentState", NodeName: "StateMachine", Kind: devicemodel.KindText,
	}
	source.Write(devicemodel.TextVariant("Running"))
	track := NewTrack(source, TrackOptions{})

	v := track.capture()
	require.Equal(t, devicemodel.KindText, v.Kind)
	assert.Equal(t, "Running", v.Text)
}
