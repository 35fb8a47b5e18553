package welllog

import (
	"math"
	"strconv"
	"strings"

	"github.com/banshee-data/welllog.report/internal/units"
)

// FormationTop is a named depth marker, rendered as a horizontal line
// across a track. Tops are orthogonal to curve selection and may lie
// outside the document's depth range; they are never clamped.
type FormationTop struct {
	Name  string
	Depth float64
}

// ParseTops reads free-form "name, depth" lines. Parsing is deliberately
// lenient: a line that does not have exactly two comma-separated fields, or
// whose depth is not a finite float, is dropped without error. Duplicate
// names are allowed.
func ParseTops(raw string) []FormationTop {
	var tops []FormationTop
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			continue
		}
		depth, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil || math.IsNaN(depth) || math.IsInf(depth, 0) {
			continue
		}
		tops = append(tops, FormationTop{Name: strings.TrimSpace(fields[0]), Depth: depth})
	}
	return tops
}

// RescaleTops converts top depths into the track's display system so the
// markers line up with the rescaled depth axis. Tops are authored in meters
// like the depth reference; identity under Metric.
func RescaleTops(tops []FormationTop, system units.System) []FormationTop {
	if system != units.Imperial {
		return tops
	}
	out := make([]FormationTop, len(tops))
	for i, t := range tops {
		out[i] = FormationTop{Name: t.Name, Depth: t.Depth * units.MetersToFeet}
	}
	return out
}
