// Package welllog is the transformation core of the viewer: it resolves the
// depth reference of a document, masks sentinel samples, partitions curves
// into display tracks, parses formation-tops annotations, and computes
// per-curve statistics. Everything here is a pure function over an
// immutable las.Document; rendering and serialization live elsewhere.
package welllog

import (
	"errors"

	"github.com/banshee-data/welllog.report/internal/las"
	"github.com/banshee-data/welllog.report/internal/units"
)

// depthMnemonics is the priority order tried when resolving the depth
// reference. The list is an interop constant shared with LAS-ecosystem
// tooling; do not reorder.
var depthMnemonics = [...]string{"DEPT", "DEPTH", "MD", "TVD"}

// ErrDepthNotFound means none of the candidate depth mnemonics exist in the
// document. It is fatal for every track and export operation: callers abort
// rather than substitute a synthetic index.
var ErrDepthNotFound = errors.New("no depth curve found (tried DEPT, DEPTH, MD, TVD)")

// ResolveDepth returns the authoritative depth curve for a document, trying
// candidate mnemonics in fixed priority order.
func ResolveDepth(doc *las.Document) (*las.Curve, error) {
	for _, m := range depthMnemonics {
		if c, ok := doc.Curve(m); ok {
			return c, nil
		}
	}
	return nil, ErrDepthNotFound
}

// RescaleDepth converts depth samples into the active measurement system
// and returns the axis unit label. Depth is authored in meters by LAS
// convention, independent of any per-curve unit field: Metric is identity,
// Imperial applies the m→ft factor.
func RescaleDepth(samples []float64, system units.System) (string, []float64) {
	if system != units.Imperial {
		return "m", samples
	}
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = v * units.MetersToFeet
	}
	return "ft", out
}
