package viewer

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/welllog.report/internal/welllog"
)

// TrackChart builds a go-echarts line chart from an inert TrackSpec. The
// depth axis is inverted (shallow at the top) and both axes are pinned to
// the actual data extent rather than echarts' padded auto-scale. Formation
// tops render as horizontal mark lines on the first series.
func TrackChart(spec welllog.TrackSpec, tops []welllog.FormationTop) *charts.Line {
	xMin, xMax, yMin, yMax := trackExtent(spec)

	var legend []string
	for _, s := range spec.Series {
		if !s.Highlight {
			legend = append(legend, s.Label)
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: spec.Title,
			Theme:     "dark",
			Width:     "700px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    spec.Title,
			Subtitle: fmt.Sprintf("depth in %s", spec.DepthUnit),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Data: legend}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: xMin, Max: xMax}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:    "value",
			Min:     yMin,
			Max:     yMax,
			Inverse: opts.Bool(true),
			Name:    fmt.Sprintf("Depth (%s)", spec.DepthUnit),
		}),
	)

	first := true
	for _, s := range spec.Series {
		data := make([]opts.LineData, len(s.X))
		for i := range s.X {
			data[i] = opts.LineData{Value: []interface{}{s.X[i], s.Y[i]}}
		}

		seriesOpts := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		}
		if s.Highlight {
			// Wide translucent band over the threshold-exceeding samples;
			// not a separate track, and kept out of the legend.
			seriesOpts = append(seriesOpts,
				charts.WithLineStyleOpts(opts.LineStyle{Width: 8, Opacity: opts.Float(0.25), Color: "#ff5252"}),
			)
		}
		if first && !s.Highlight {
			for _, top := range tops {
				seriesOpts = append(seriesOpts,
					charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
						Name:  top.Name,
						YAxis: top.Depth,
					}),
				)
			}
			first = false
		}

		line.AddSeries(s.Label, data, seriesOpts...)
	}

	return line
}

// RenderTrack renders a track chart as a standalone HTML page.
func RenderTrack(spec welllog.TrackSpec, tops []welllog.FormationTop, w io.Writer) error {
	return TrackChart(spec, tops).Render(w)
}

// trackExtent computes the data bounds across all series of a track.
func trackExtent(spec welllog.TrackSpec) (xMin, xMax, yMin, yMax float64) {
	xMin, yMin = math.Inf(1), math.Inf(1)
	xMax, yMax = math.Inf(-1), math.Inf(-1)
	for _, s := range spec.Series {
		for i := range s.X {
			xMin = math.Min(xMin, s.X[i])
			xMax = math.Max(xMax, s.X[i])
			yMin = math.Min(yMin, s.Y[i])
			yMax = math.Max(yMax, s.Y[i])
		}
	}
	if math.IsInf(xMin, 1) {
		xMin, xMax, yMin, yMax = 0, 1, 0, 1
	}
	return xMin, xMax, yMin, yMax
}
