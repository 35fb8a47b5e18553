// Package units converts curve sample values between the metric and
// imperial measurement systems. The registry is a static table: conversions
// are pure multiplicative transforms, and unrecognized units pass through
// unchanged so data is never silently mislabelled.
package units

import (
	"fmt"
	"strings"
)

// System selects which conversion entries apply. Exactly one system is
// active per request.
type System int

const (
	Metric System = iota
	Imperial
)

func (s System) String() string {
	switch s {
	case Imperial:
		return "imperial"
	default:
		return "metric"
	}
}

// ParseSystem maps a user-supplied string to a System. Empty input selects
// Metric.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "metric":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	default:
		return Metric, fmt.Errorf("unknown measurement system %q", s)
	}
}

// MetersToFeet is the depth rescale factor. Depth in LAS files is metric by
// convention and carries no unit field of its own.
const MetersToFeet = 3.28084

// Conversion maps a source unit to a display label and a multiplicative
// factor. A factor of 1 is a label-only rename.
type Conversion struct {
	Target string
	Factor float64
}

// imperialConversions is read-only after initialization. Keys are
// lower-cased source unit symbols.
var imperialConversions = map[string]Conversion{
	"m":     {Target: "ft", Factor: MetersToFeet},
	"g/cm3": {Target: "lb/ft3", Factor: 62.428},
	"us/ft": {Target: "us/ft", Factor: 1},
	"ohm.m": {Target: "ohm.m", Factor: 1},
	"in":    {Target: "in", Factor: 1},
	"m3/m3": {Target: "v/v", Factor: 1},
}

// Convert applies the active system's transform to values and returns the
// display unit label alongside the display samples. Under Metric, or when
// sourceUnit has no registered conversion, the input is returned unchanged
// (exact identity, same backing slice). The transform is total over finite
// floats and is applied to sentinel samples too, so validity masks must be
// computed on the raw values before calling Convert.
func Convert(system System, sourceUnit string, values []float64) (string, []float64) {
	if system != Imperial {
		return sourceUnit, values
	}
	conv, ok := imperialConversions[strings.ToLower(strings.TrimSpace(sourceUnit))]
	if !ok {
		return sourceUnit, values
	}
	if conv.Factor == 1 {
		return conv.Target, values
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * conv.Factor
	}
	return conv.Target, out
}
