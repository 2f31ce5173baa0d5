package recorder

import (
	"strings"

	"github.com/opcua-lads/labstreams/devicemodel"
)

// Track is the immutable binding of one data source to a recording column:
// display name, engineering unit, and normalized value kind, all derived
// once at construction.
type Track struct {
	name   string
	unit   string
	source *devicemodel.Value
	kind   devicemodel.ValueKind
}

// TrackOptions configure track derivation.
type TrackOptions struct {
	// ShortNames abbreviates well-known value names (CurrentValue and
	// SensorValue to "PV", TargetValue to "SP").
	//
	// Defaults to false: the abbreviation branch was historically
	// unreachable behind an always-true guard, so the long form is the
	// observed behavior everywhere.
	// TODO: confirm with the device-modeling team whether PV/SP
	// abbreviation was the intent before flipping this default.
	ShortNames bool
}

// NewTrack derives a track from a bound data source. Returns nil for a nil
// source.
func NewTrack(source *devicemodel.Value, opts TrackOptions) *Track {
	if source == nil {
		return nil
	}

	t := &Track{
		source: source,
		kind:   source.Kind,
		name:   deriveName(source, opts.ShortNames),
	}

	// Unit comes from engineering-unit metadata only for numeric analog
	// sources; everything else renders without a unit.
	if source.Analog && source.Kind == devicemodel.KindNumeric {
		t.unit = source.Unit
	}

	return t
}

func deriveName(source *devicemodel.Value, short bool) string {
	if short {
		switch {
		case strings.Contains(source.Name, devicemodel.NameCurrentValue),
			strings.Contains(source.Name, devicemodel.NameSensorValue):
			return "PV"
		case strings.Contains(source.Name, devicemodel.NameTargetValue):
			return "SP"
		}
	}
	if source.NodeName == "" {
		return source.Name
	}
	return source.NodeName + "." + source.Name
}

// Name returns the display label.
func (t *Track) Name() string {
	return t.name
}

// Unit returns the engineering unit, empty for non-analog sources.
func (t *Track) Unit() string {
	return t.unit
}

// Kind returns the normalized value kind.
func (t *Track) Kind() devicemodel.ValueKind {
	return t.kind
}

// Source returns the bound data source. Source identity is track identity.
func (t *Track) Source() *devicemodel.Value {
	return t.source
}

// Header returns the column label: the name, suffixed with " [unit]" when a
// unit is present.
func (t *Track) Header() string {
	if t.unit == "" {
		return t.name
	}
	return t.name + " [" + t.unit + "]"
}

// capture reads the source's current value, normalizing text sources to
// their display string.
func (t *Track) capture() devicemodel.Variant {
	v := t.source.Read()
	if v.Kind == devicemodel.KindText {
		return devicemodel.TextVariant(v.DisplayString())
	}
	return v
}
