package welllog

import (
	"strings"
	"testing"

	"github.com/banshee-data/welllog.report/internal/las"
	"github.com/banshee-data/welllog.report/internal/units"
)

const trackLAS = `~Well
NULL. -999.25 :
~Curve
DEPT.M     : Depth
GR  .GAPI  : Gamma Ray
RHOB.G/CM3 : Bulk Density
~ASCII
1000.0   10.0   2.30
1000.5   80.0   2.35
1001.0   90.0  -999.25
1001.5  -999.25 2.45
1002.0   60.0   2.50
`

func parseTrackDoc(t *testing.T) (*las.Document, *las.Curve) {
	t.Helper()
	doc, err := las.Parse(strings.NewReader(trackLAS))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	depth, err := ResolveDepth(doc)
	if err != nil {
		t.Fatalf("ResolveDepth: %v", err)
	}
	return doc, depth
}

func TestBuildTrackMasksInvalidSamples(t *testing.T) {
	doc, depth := parseTrackDoc(t)

	spec := BuildTrack(doc, depth, "Density", []string{"RHOB"}, units.Metric, nil)
	if spec.Title != "Density" {
		t.Errorf("Title = %q, want Density", spec.Title)
	}
	if spec.DepthUnit != "m" {
		t.Errorf("DepthUnit = %q, want m", spec.DepthUnit)
	}
	if len(spec.Series) != 1 {
		t.Fatalf("Series count = %d, want 1", len(spec.Series))
	}

	s := spec.Series[0]
	if s.Label != "RHOB (G/CM3)" {
		t.Errorf("Label = %q, want 'RHOB (G/CM3)'", s.Label)
	}
	// Sample at 1001.0 is sentinel: the series drops both the value and its
	// depth, keeping X and Y aligned.
	wantX := []float64{2.30, 2.35, 2.45, 2.50}
	wantY := []float64{1000.0, 1000.5, 1001.5, 1002.0}
	if len(s.X) != len(wantX) || len(s.Y) != len(wantY) {
		t.Fatalf("series lengths X=%d Y=%d, want %d", len(s.X), len(s.Y), len(wantX))
	}
	for i := range wantX {
		if s.X[i] != wantX[i] || s.Y[i] != wantY[i] {
			t.Errorf("point %d = (%v, %v), want (%v, %v)", i, s.X[i], s.Y[i], wantX[i], wantY[i])
		}
	}
}

func TestBuildTrackImperialConversion(t *testing.T) {
	doc, depth := parseTrackDoc(t)

	spec := BuildTrack(doc, depth, "Density", []string{"RHOB"}, units.Imperial, nil)
	if spec.DepthUnit != "ft" {
		t.Errorf("DepthUnit = %q, want ft", spec.DepthUnit)
	}
	s := spec.Series[0]
	if s.Label != "RHOB (lb/ft3)" {
		t.Errorf("Label = %q, want 'RHOB (lb/ft3)'", s.Label)
	}
	if s.X[0] != 2.30*62.428 {
		t.Errorf("X[0] = %v, want %v", s.X[0], 2.30*62.428)
	}
	if s.Y[0] != 1000.0*units.MetersToFeet {
		t.Errorf("Y[0] = %v, want %v", s.Y[0], 1000.0*units.MetersToFeet)
	}
	// The masked-out sentinel row must stay out after conversion too.
	if len(s.X) != 4 {
		t.Errorf("series length = %d, want 4", len(s.X))
	}
}

func TestBuildTrackSkipsAbsentCurves(t *testing.T) {
	doc, depth := parseTrackDoc(t)

	spec := BuildTrack(doc, depth, "Mixed", []string{"GR", "NPHI", "SP"}, units.Metric, nil)
	if len(spec.Series) != 1 {
		t.Fatalf("Series count = %d, want 1", len(spec.Series))
	}
	if len(spec.Skipped) != 2 || spec.Skipped[0] != "NPHI" || spec.Skipped[1] != "SP" {
		t.Errorf("Skipped = %v, want [NPHI SP]", spec.Skipped)
	}
}

func TestBuildTrackAllInvalidCurve(t *testing.T) {
	src := `~Curve
DEPT.M :
DT  .US/FT :
~ASCII
100.0 -999.25
100.5 -999.25
`
	doc, err := las.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	depth, _ := ResolveDepth(doc)

	spec := BuildTrack(doc, depth, "Sonic", []string{"DT"}, units.Metric, nil)
	if len(spec.Series) != 0 {
		t.Fatalf("Series count = %d, want 0", len(spec.Series))
	}
	if len(spec.Diagnostics) != 1 || !strings.Contains(spec.Diagnostics[0], "DT") {
		t.Errorf("Diagnostics = %v, want one entry naming DT", spec.Diagnostics)
	}
}

// Highlighting compares the raw samples against the threshold: strictly
// greater-than, and sentinel rows never highlight even though the sentinel
// is far below any plausible threshold.
func TestBuildTrackHighlight(t *testing.T) {
	doc, depth := parseTrackDoc(t)
	hp := &HighlightPolicy{Curve: "gr", Threshold: 75}

	spec := BuildTrack(doc, depth, "Gamma Ray", []string{"GR"}, units.Metric, hp)
	if len(spec.Series) != 2 {
		t.Fatalf("Series count = %d, want 2 (trace + highlight)", len(spec.Series))
	}

	hl := spec.Series[1]
	if !hl.Highlight {
		t.Fatal("second series should be the highlight overlay")
	}
	// GR = [10, 80, 90, sentinel, 60]: only 80 and 90 exceed 75.
	wantY := []float64{1000.5, 1001.0}
	if len(hl.Y) != len(wantY) {
		t.Fatalf("highlight length = %d, want %d", len(hl.Y), len(wantY))
	}
	for i := range wantY {
		if hl.Y[i] != wantY[i] {
			t.Errorf("highlight depth[%d] = %v, want %v", i, hl.Y[i], wantY[i])
		}
	}
}

func TestBuildTrackHighlightNoMatches(t *testing.T) {
	doc, depth := parseTrackDoc(t)
	hp := &HighlightPolicy{Curve: "GR", Threshold: 1000}

	spec := BuildTrack(doc, depth, "Gamma Ray", []string{"GR"}, units.Metric, hp)
	if len(spec.Series) != 1 {
		t.Errorf("Series count = %d, want 1 (no highlight overlay)", len(spec.Series))
	}
}

func TestBuildTrackHighlightOtherCurveUnaffected(t *testing.T) {
	doc, depth := parseTrackDoc(t)
	hp := &HighlightPolicy{Curve: "GR", Threshold: 75}

	spec := BuildTrack(doc, depth, "Density", []string{"RHOB"}, units.Metric, hp)
	for _, s := range spec.Series {
		if s.Highlight {
			t.Error("highlight overlay produced for a curve the policy does not name")
		}
	}
}
