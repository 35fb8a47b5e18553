package welllog

import (
	"math"

	"github.com/banshee-data/welllog.report/internal/las"
)

// ValidMask reports which samples carry real data. A sample is invalid iff
// it equals the reserved sentinel exactly or is NaN; no tolerance is
// applied. Masks must always be computed on raw, pre-conversion samples
// because a unit transform moves the sentinel to a different numeric value.
func ValidMask(samples []float64) []bool {
	mask := make([]bool, len(samples))
	for i, v := range samples {
		mask[i] = v != las.NullValue && !math.IsNaN(v)
	}
	return mask
}

// ValidCount returns the number of valid samples. A curve with zero valid
// samples must not produce a plotted trace.
func ValidCount(samples []float64) int {
	n := 0
	for _, v := range samples {
		if v != las.NullValue && !math.IsNaN(v) {
			n++
		}
	}
	return n
}
