package welllog

import (
	"fmt"
	"strings"

	"github.com/banshee-data/welllog.report/internal/las"
	"github.com/banshee-data/welllog.report/internal/units"
)

// HighlightPolicy marks the samples of one curve that exceed a threshold,
// rendered as a wide translucent overlay band on top of the normal trace.
// The classic use is flagging shale zones on the gamma-ray curve.
type HighlightPolicy struct {
	Curve     string
	Threshold float64
}

// DefaultHighlight is the conventional gamma-ray shale cutoff.
var DefaultHighlight = HighlightPolicy{Curve: "GR", Threshold: 75}

// Series is one drawable trace: converted sample values on X paired with
// display depth on Y, invalid samples already removed. Highlight overlays
// carry Highlight=true and are excluded from the legend.
type Series struct {
	Label     string
	X         []float64
	Y         []float64
	Highlight bool
}

// TrackSpec is the inert output of BuildTrack, consumed by a renderer. The
// renderer must invert the depth axis (shallow at the top) and pin axis
// bounds to the actual data extent.
type TrackSpec struct {
	Title       string
	DepthUnit   string
	Series      []Series
	Skipped     []string
	Diagnostics []string
}

// BuildTrack assembles the display spec for one track. Curves named in
// curveNames but absent from the document are skipped, not errors: track
// membership is user-entered and documents vary. A curve with no valid
// samples contributes no trace but records a diagnostic.
func BuildTrack(doc *las.Document, depth *las.Curve, title string, curveNames []string, system units.System, highlight *HighlightPolicy) TrackSpec {
	depthUnit, displayDepth := RescaleDepth(depth.Samples, system)
	spec := TrackSpec{Title: title, DepthUnit: depthUnit}

	for _, name := range curveNames {
		curve, ok := doc.Curve(name)
		if !ok {
			spec.Skipped = append(spec.Skipped, name)
			continue
		}

		// Mask on the raw samples, then convert. The sentinel is only
		// recognizable pre-conversion.
		mask := ValidMask(curve.Samples)
		displayUnit, displayValues := units.Convert(system, curve.Unit, curve.Samples)

		xs, ys := applyMask(displayValues, displayDepth, mask)
		if len(xs) == 0 {
			spec.Diagnostics = append(spec.Diagnostics,
				fmt.Sprintf("curve %s has no valid samples; trace omitted", curve.Mnemonic))
			continue
		}

		label := curve.Mnemonic
		if displayUnit != "" {
			label = fmt.Sprintf("%s (%s)", curve.Mnemonic, displayUnit)
		}
		spec.Series = append(spec.Series, Series{Label: label, X: xs, Y: ys})

		if highlight != nil && strings.EqualFold(highlight.Curve, curve.Mnemonic) {
			hm := make([]bool, len(mask))
			for i, ok := range mask {
				hm[i] = ok && curve.Samples[i] > highlight.Threshold
			}
			hx, hy := applyMask(displayValues, displayDepth, hm)
			if len(hx) > 0 {
				spec.Series = append(spec.Series, Series{X: hx, Y: hy, Highlight: true})
			}
		}
	}

	return spec
}

func applyMask(values, depth []float64, mask []bool) (xs, ys []float64) {
	for i, ok := range mask {
		if ok {
			xs = append(xs, values[i])
			ys = append(ys, depth[i])
		}
	}
	return xs, ys
}
