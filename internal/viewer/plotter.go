package viewer

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/welllog.report/internal/welllog"
)

// PlotTrack renders a TrackSpec as a gonum plot for offline PNG output,
// used by the las-export tool to produce report artifacts without a
// browser. Depth runs down the Y axis (inverted scale), tops draw as
// dashed horizontal lines.
func PlotTrack(spec welllog.TrackSpec, tops []welllog.FormationTop) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = spec.Title
	p.Y.Label.Text = fmt.Sprintf("Depth (%s)", spec.DepthUnit)
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	xMin, xMax, yMin, yMax := trackExtent(spec)
	p.X.Min, p.X.Max = xMin, xMax
	p.Y.Min, p.Y.Max = yMin, yMax

	colors := trackColors(len(spec.Series))
	for i, s := range spec.Series {
		pts := make(plotter.XYs, len(s.X))
		for j := range s.X {
			pts[j] = plotter.XY{X: s.X[j], Y: s.Y[j]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		if s.Highlight {
			line.Width = vg.Points(6)
			line.Color = color.RGBA{R: 255, G: 82, B: 82, A: 64}
			p.Add(line)
			continue
		}
		line.Width = vg.Points(1)
		line.Color = colors[i]
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}

	for _, top := range tops {
		marker, err := plotter.NewLine(plotter.XYs{{X: xMin, Y: top.Depth}, {X: xMax, Y: top.Depth}})
		if err != nil {
			return nil, fmt.Errorf("top %q: %w", top.Name, err)
		}
		marker.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		marker.Color = color.RGBA{R: 120, G: 120, B: 120, A: 255}
		p.Add(marker)
		p.Legend.Add(top.Name, marker)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return p, nil
}

// SaveTrackPNG plots a track and writes it to dir as a PNG named after the
// track title.
func SaveTrackPNG(spec welllog.TrackSpec, tops []welllog.FormationTop, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}
	p, err := PlotTrack(spec, tops)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, sanitizeFilename(spec.Title)+".png")
	if err := p.Save(6*vg.Inch, 9*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save track plot: %w", err)
	}
	return path, nil
}

// trackColors creates a palette of distinct colors for curve lines.
func trackColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range).
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

func sanitizeFilename(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r == ' ', r == '/':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "track"
	}
	return string(out)
}
