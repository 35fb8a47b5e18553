// las-export converts a LAS file to CSV without the web service, and can
// optionally render per-track PNG plots and print per-curve statistics.
//
// Usage:
//
//	las-export -las well.las -out well.csv
//	las-export -las well.las -curves GR,RHOB -system imperial -plot-dir plots -stats
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/banshee-data/welllog.report/internal/config"
	"github.com/banshee-data/welllog.report/internal/export"
	"github.com/banshee-data/welllog.report/internal/las"
	"github.com/banshee-data/welllog.report/internal/units"
	"github.com/banshee-data/welllog.report/internal/viewer"
	"github.com/banshee-data/welllog.report/internal/welllog"
)

var (
	lasPath    = flag.String("las", "", "LAS file to read (required)")
	outPath    = flag.String("out", "", "CSV output path (default stdout)")
	curvesFlag = flag.String("curves", "", "Comma-separated curve mnemonics (default: all)")
	systemFlag = flag.String("system", "metric", "Measurement system for plots: metric or imperial")
	plotDir    = flag.String("plot-dir", "", "Render track PNGs into this directory")
	showStats  = flag.Bool("stats", false, "Print per-curve statistics")
	configPath = flag.String("config", "", "Viewer config JSON for track assignments")
)

func main() {
	flag.Parse()
	if *lasPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*lasPath)
	if err != nil {
		log.Fatalf("failed to open LAS file: %v", err)
	}
	doc, err := las.Parse(f)
	f.Close()
	if err != nil {
		log.Fatalf("failed to parse LAS file: %v", err)
	}

	depth, err := welllog.ResolveDepth(doc)
	if err != nil {
		log.Fatalf("%v", err)
	}

	system, err := units.ParseSystem(*systemFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	names := splitCurves(*curvesFlag)
	if len(names) == 0 {
		for _, n := range doc.CurveNames() {
			if n != depth.Mnemonic {
				names = append(names, n)
			}
		}
	}

	if err := writeCSV(doc, depth, names); err != nil {
		log.Fatalf("export failed: %v", err)
	}

	if *showStats {
		printStats(doc, names)
	}

	if *plotDir != "" {
		plotTracks(doc, depth, names, system)
	}
}

func writeCSV(doc *las.Document, depth *las.Curve, names []string) error {
	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := export.Export(doc, depth, names, out); err != nil {
		return err
	}
	if *outPath != "" {
		log.Printf("wrote %d rows to %s", doc.SampleCount(), *outPath)
	}
	return nil
}

func printStats(doc *las.Document, names []string) {
	fmt.Fprintf(os.Stderr, "%-8s %-8s %8s %12s %12s %12s %12s\n",
		"CURVE", "UNIT", "VALID", "MIN", "MAX", "MEAN", "STDDEV")
	for _, name := range names {
		curve, ok := doc.Curve(name)
		if !ok {
			continue
		}
		st, ok := welllog.Stats(curve)
		if !ok {
			fmt.Fprintf(os.Stderr, "%-8s %-8s %8d %12s %12s %12s %12s\n",
				st.Mnemonic, st.Unit, 0, "-", "-", "-", "-")
			continue
		}
		fmt.Fprintf(os.Stderr, "%-8s %-8s %8d %12.4f %12.4f %12.4f %12.4f\n",
			st.Mnemonic, st.Unit, st.Valid, st.Min, st.Max, st.Mean, st.StdDev)
	}
}

// plotTracks renders one PNG per configured track, restricted to the
// requested curves. Tracks with none of the requested curves are skipped.
func plotTracks(doc *las.Document, depth *las.Curve, names []string, system units.System) {
	cfg := config.EmptyViewerConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadViewerConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	requested := make(map[string]bool, len(names))
	for _, n := range names {
		requested[strings.ToUpper(n)] = true
	}
	highlight := cfg.GetHighlight()

	plotted := 0
	for _, track := range cfg.GetTracks() {
		var selected []string
		for _, c := range track.Curves {
			if requested[strings.ToUpper(c)] {
				selected = append(selected, c)
			}
		}
		if len(selected) == 0 {
			continue
		}
		spec := welllog.BuildTrack(doc, depth, track.Name, selected, system, &highlight)
		if len(spec.Series) == 0 {
			continue
		}
		path, err := viewer.SaveTrackPNG(spec, nil, *plotDir)
		if err != nil {
			log.Printf("failed to plot track %q: %v", track.Name, err)
			continue
		}
		log.Printf("wrote %s", path)
		plotted++
	}
	if plotted == 0 {
		log.Printf("no tracks matched the requested curves; nothing plotted")
	}
}

func splitCurves(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
