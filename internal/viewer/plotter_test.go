package viewer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/banshee-data/welllog.report/internal/welllog"
)

func TestPlotTrack(t *testing.T) {
	tops := []welllog.FormationTop{{Name: "Top Sand", Depth: 1000.25}}
	p, err := PlotTrack(testTrackSpec(), tops)
	if err != nil {
		t.Fatalf("PlotTrack() error = %v", err)
	}
	if p.Title.Text != "Gamma Ray" {
		t.Errorf("title = %q, want Gamma Ray", p.Title.Text)
	}
	// Depth bounds are pinned to the data extent.
	if p.Y.Min != 1000.0 || p.Y.Max != 1001.0 {
		t.Errorf("Y bounds = [%v, %v], want [1000, 1001]", p.Y.Min, p.Y.Max)
	}
	if p.X.Min != 45.5 || p.X.Max != 80.0 {
		t.Errorf("X bounds = [%v, %v], want [45.5, 80]", p.X.Min, p.X.Max)
	}
}

func TestSaveTrackPNG(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveTrackPNG(testTrackSpec(), nil, dir)
	if err != nil {
		t.Fatalf("SaveTrackPNG() error = %v", err)
	}
	if filepath.Base(path) != "Gamma_Ray.png" {
		t.Errorf("filename = %q, want Gamma_Ray.png", filepath.Base(path))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Gamma Ray / Caliper", "Gamma_Ray___Caliper"},
		{"Resistivity", "Resistivity"},
		{"///", "___"},
		{"..", "track"},
		{"", "track"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
