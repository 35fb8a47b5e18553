// Package las parses Log ASCII Standard (LAS) 2.0 well-log files into an
// immutable in-memory document: named curves aligned to a shared depth
// index, plus well header metadata.
package las

import "strings"

// NullValue is the canonical no-data sentinel used across the LAS ecosystem.
// Files declaring a different NULL in their ~Well section are normalized to
// this value on read, so downstream masking only ever has to test one
// sentinel (plus NaN).
const NullValue = -999.25

// Curve is one named sample sequence. Samples align index-for-index with
// every other curve in the same document.
type Curve struct {
	Mnemonic    string
	Unit        string
	Description string
	Samples     []float64
}

// Document is a parsed LAS file. It is constructed once by Parse and never
// mutated afterwards; request handlers share it freely.
type Document struct {
	curves map[string]*Curve
	order  []string
	well   map[string]string
}

// Curve looks up a curve by mnemonic, case-insensitively.
func (d *Document) Curve(mnemonic string) (*Curve, bool) {
	c, ok := d.curves[normalizeMnemonic(mnemonic)]
	return c, ok
}

// Curves returns all curves in file order.
func (d *Document) Curves() []*Curve {
	out := make([]*Curve, 0, len(d.order))
	for _, m := range d.order {
		out = append(out, d.curves[m])
	}
	return out
}

// CurveNames returns the curve mnemonics in file order.
func (d *Document) CurveNames() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Well returns the value of a well-header field (e.g. WELL, FLD, UWI).
func (d *Document) Well(key string) (string, bool) {
	v, ok := d.well[normalizeMnemonic(key)]
	return v, ok
}

// WellMeta returns a copy of all well-header fields.
func (d *Document) WellMeta() map[string]string {
	out := make(map[string]string, len(d.well))
	for k, v := range d.well {
		out[k] = v
	}
	return out
}

// SampleCount returns the number of index positions shared by all curves.
func (d *Document) SampleCount() int {
	if len(d.order) == 0 {
		return 0
	}
	return len(d.curves[d.order[0]].Samples)
}

func normalizeMnemonic(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
