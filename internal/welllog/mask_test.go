package welllog

import (
	"math"
	"testing"

	"github.com/banshee-data/welllog.report/internal/las"
)

func TestValidMask(t *testing.T) {
	samples := []float64{45.5, las.NullValue, math.NaN(), 0, -999.2500001, math.Inf(1)}
	want := []bool{true, false, false, true, true, true}

	mask := ValidMask(samples)
	if len(mask) != len(want) {
		t.Fatalf("mask length = %d, want %d", len(mask), len(want))
	}
	for i := range want {
		if mask[i] != want[i] {
			t.Errorf("mask[%d] = %v, want %v (sample %v)", i, mask[i], want[i], samples[i])
		}
	}
}

func TestValidMaskEmpty(t *testing.T) {
	if mask := ValidMask(nil); len(mask) != 0 {
		t.Errorf("ValidMask(nil) = %v, want empty", mask)
	}
}

func TestValidCount(t *testing.T) {
	samples := []float64{1, las.NullValue, 3, math.NaN(), 5}
	if got := ValidCount(samples); got != 3 {
		t.Errorf("ValidCount() = %d, want 3", got)
	}
	if got := ValidCount(nil); got != 0 {
		t.Errorf("ValidCount(nil) = %d, want 0", got)
	}
}
