package welllog

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/welllog.report/internal/las"
)

// CurveStats summarizes the valid samples of one curve. Values are in the
// curve's native units; statistics never include sentinel or NaN samples.
type CurveStats struct {
	Mnemonic string  `json:"mnemonic"`
	Unit     string  `json:"unit"`
	Valid    int     `json:"valid"`
	Total    int     `json:"total"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"stddev"`
	P10      float64 `json:"p10"`
	P50      float64 `json:"p50"`
	P90      float64 `json:"p90"`
}

// Stats computes summary statistics over a curve's valid samples. ok is
// false when the curve has no valid samples at all.
func Stats(curve *las.Curve) (CurveStats, bool) {
	valid := make([]float64, 0, len(curve.Samples))
	for _, v := range curve.Samples {
		if v != las.NullValue && !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return CurveStats{Mnemonic: curve.Mnemonic, Unit: curve.Unit, Total: len(curve.Samples)}, false
	}

	sort.Float64s(valid)
	mean, std := stat.MeanStdDev(valid, nil)
	if len(valid) == 1 {
		std = 0
	}

	return CurveStats{
		Mnemonic: curve.Mnemonic,
		Unit:     curve.Unit,
		Valid:    len(valid),
		Total:    len(curve.Samples),
		Min:      valid[0],
		Max:      valid[len(valid)-1],
		Mean:     mean,
		StdDev:   std,
		P10:      stat.Quantile(0.10, stat.Empirical, valid, nil),
		P50:      stat.Quantile(0.50, stat.Empirical, valid, nil),
		P90:      stat.Quantile(0.90, stat.Empirical, valid, nil),
	}, true
}
