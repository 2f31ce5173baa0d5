package devicemodel

import "strconv"

// ValueKind is the normalized type of a data source. Enumerated and
// localized-text sources collapse to KindText.
type ValueKind int

const (
	// KindNumeric marks sources whose values are numbers.
	KindNumeric ValueKind = iota
	// KindText marks sources whose values render as display strings.
	KindText
)

// String returns the kind name.
func (k ValueKind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "text"
}

// Variant is one typed value cell as captured from a data source.
type Variant struct {
	Kind   ValueKind
	Number float64
	Text   string
}

// NumberVariant wraps a float64 as a numeric Variant.
func NumberVariant(n float64) Variant {
	return Variant{Kind: KindNumeric, Number: n}
}

// TextVariant wraps a string as a text Variant.
func TextVariant(s string) Variant {
	return Variant{Kind: KindText, Text: s}
}

// DisplayString normalizes the variant to its display form. Numbers use the
// shortest representation that round-trips; text is returned verbatim.
func (v Variant) DisplayString() string {
	if v.Kind == KindNumeric {
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	}
	return v.Text
}

// Value is one named readable/writable data source on a node. Identity is
// pointer identity: display names may collide across different nodes, so
// consumers comparing tracks must compare sources, not names.
type Value struct {
	// Name is the source's own name within its node (e.g. "CurrentValue").
	Name string
	// NodeName scopes the display name by the owning node.
	NodeName string
	// Unit is the engineering-unit metadata. Only meaningful when Analog is
	// set; consumers deriving labels ignore it otherwise.
	Unit string
	// Analog reports whether the source declares itself a numeric analog
	// type with engineering-unit metadata.
	Analog bool
	// Kind is the normalized value kind of this source.
	Kind ValueKind

	current Variant
}

// Read returns the source's current value.
func (v *Value) Read() Variant {
	return v.current
}

// Write updates the source's current value.
func (v *Value) Write(val Variant) {
	v.current = val
}
