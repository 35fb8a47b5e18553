package viewer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/banshee-data/welllog.report/internal/welllog"
)

func testTrackSpec() welllog.TrackSpec {
	return welllog.TrackSpec{
		Title:     "Gamma Ray",
		DepthUnit: "m",
		Series: []welllog.Series{
			{
				Label: "GR (GAPI)",
				X:     []float64{45.5, 80.0, 60.0},
				Y:     []float64{1000.0, 1000.5, 1001.0},
			},
			{
				X:         []float64{80.0},
				Y:         []float64{1000.5},
				Highlight: true,
			},
		},
	}
}

func TestRenderTrack(t *testing.T) {
	tops := []welllog.FormationTop{{Name: "Top Sand", Depth: 1000.25}}

	var buf bytes.Buffer
	if err := RenderTrack(testTrackSpec(), tops, &buf); err != nil {
		t.Fatalf("RenderTrack() error = %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "Gamma Ray") {
		t.Error("rendered page missing track title")
	}
	if !strings.Contains(html, "GR (GAPI)") {
		t.Error("rendered page missing series label")
	}
	if !strings.Contains(html, "Top Sand") {
		t.Error("rendered page missing formation top mark line")
	}
	if !strings.Contains(html, "inverse") {
		t.Error("rendered page missing inverted depth axis")
	}
}

// The highlight overlay renders as a wide translucent band: its line style
// must carry the reduced opacity and accent color into the page options.
func TestRenderTrackHighlightStyle(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTrack(testTrackSpec(), nil, &buf); err != nil {
		t.Fatalf("RenderTrack() error = %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "0.25") {
		t.Error("rendered page missing highlight opacity")
	}
	if !strings.Contains(html, "#ff5252") {
		t.Error("rendered page missing highlight color")
	}
}

// The highlight overlay stays out of the legend so it cannot be toggled
// like a real curve.
func TestTrackChartLegendExcludesHighlight(t *testing.T) {
	line := TrackChart(testTrackSpec(), nil)
	legend := line.Legend.Data
	labels, ok := legend.([]string)
	if !ok {
		t.Fatalf("legend data type = %T, want []string", legend)
	}
	if len(labels) != 1 || labels[0] != "GR (GAPI)" {
		t.Errorf("legend = %v, want [GR (GAPI)]", labels)
	}
}

func TestTrackExtent(t *testing.T) {
	xMin, xMax, yMin, yMax := trackExtent(testTrackSpec())
	if xMin != 45.5 || xMax != 80.0 {
		t.Errorf("x extent = [%v, %v], want [45.5, 80]", xMin, xMax)
	}
	if yMin != 1000.0 || yMax != 1001.0 {
		t.Errorf("y extent = [%v, %v], want [1000, 1001]", yMin, yMax)
	}
}

func TestTrackExtentEmpty(t *testing.T) {
	xMin, xMax, yMin, yMax := trackExtent(welllog.TrackSpec{})
	if xMin != 0 || xMax != 1 || yMin != 0 || yMax != 1 {
		t.Errorf("empty extent = [%v %v %v %v], want [0 1 0 1]", xMin, xMax, yMin, yMax)
	}
}
