// Package export serializes document curves into delimited tables.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/banshee-data/welllog.report/internal/las"
)

// CurveWriter wraps csv.Writer with the column layout used for well
// exports: one Depth column followed by one column per requested curve.
type CurveWriter struct {
	w *csv.Writer
}

// NewCurveWriter creates a CurveWriter emitting to w.
func NewCurveWriter(w io.Writer) *CurveWriter {
	return &CurveWriter{w: csv.NewWriter(w)}
}

// WriteDocument emits a header row and one row per index position. Values
// are raw and unconverted: export is unit-system-independent, and no
// masking is applied, so sentinel samples pass through verbatim for
// downstream tools to apply their own null policy. Curves named but absent
// from the document are skipped.
func (c *CurveWriter) WriteDocument(doc *las.Document, depth *las.Curve, curveNames []string) error {
	curves := make([]*las.Curve, 0, len(curveNames))
	header := []string{"Depth"}
	for _, name := range curveNames {
		if curve, ok := doc.Curve(name); ok {
			curves = append(curves, curve)
			header = append(header, curve.Mnemonic)
		}
	}
	if err := c.w.Write(header); err != nil {
		return err
	}

	row := make([]string, len(curves)+1)
	for i := range depth.Samples {
		row[0] = formatSample(depth.Samples[i])
		for ci, curve := range curves {
			row[ci+1] = formatSample(curve.Samples[i])
		}
		if err := c.w.Write(row); err != nil {
			return err
		}
	}

	c.w.Flush()
	return c.w.Error()
}

// Export is the one-shot convenience form of WriteDocument.
func Export(doc *las.Document, depth *las.Curve, curveNames []string, w io.Writer) error {
	return NewCurveWriter(w).WriteDocument(doc, depth, curveNames)
}

// formatSample round-trips float64 exactly: the Depth column must equal the
// raw samples bit-for-bit after re-parsing.
func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
