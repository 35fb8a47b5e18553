package las

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports a fatal problem interpreting an uploaded LAS file.
// Parsing is all-or-nothing: a document that fails to parse yields no
// partial curves.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("las: line %d: %s", e.Line, e.Msg)
	}
	return "las: " + e.Msg
}

type section int

const (
	sectionNone section = iota
	sectionVersion
	sectionWell
	sectionCurve
	sectionParameter
	sectionOther
	sectionASCII
)

// Parse reads a LAS 2.0 document. Supported surface: ~Version (VERS/WRAP),
// ~Well (metadata, NULL override), ~Curve (mnemonic, unit, description),
// ~ASCII data (wrapped or unwrapped), '#' comment lines. Mnemonics are
// case-normalized. Sample values equal to the file's declared NULL are
// rewritten to NullValue so one sentinel holds document-wide.
func Parse(r io.Reader) (*Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	doc := &Document{
		curves: make(map[string]*Curve),
		well:   make(map[string]string),
	}
	nullValue := NullValue
	cur := sectionNone
	var data []float64
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.HasPrefix(trimmed, "~") {
			cur = sectionFor(trimmed)
			continue
		}

		switch cur {
		case sectionNone:
			return nil, &ParseError{Line: lineNo, Msg: "data before first section header"}
		case sectionVersion, sectionParameter, sectionOther:
			// Version flags (VERS, WRAP) do not change how we tokenize the
			// data section, and parameter/other sections carry no curve data.
		case sectionWell:
			mnem, _, value, err := splitHeaderLine(trimmed)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: err.Error()}
			}
			if mnem == "NULL" {
				if v, err := strconv.ParseFloat(value, 64); err == nil {
					nullValue = v
				}
				continue
			}
			doc.well[mnem] = value
		case sectionCurve:
			mnem, unit, _, err := splitHeaderLine(trimmed)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: err.Error()}
			}
			desc := headerDescription(trimmed)
			if _, dup := doc.curves[mnem]; dup {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("duplicate curve mnemonic %q", mnem)}
			}
			doc.curves[mnem] = &Curve{Mnemonic: mnem, Unit: unit, Description: desc}
			doc.order = append(doc.order, mnem)
		case sectionASCII:
			for _, tok := range strings.Fields(trimmed) {
				v, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid sample %q", tok)}
				}
				data = append(data, v)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Msg: err.Error()}
	}

	if len(doc.order) == 0 {
		return nil, &ParseError{Msg: "no ~Curve section"}
	}
	nCurves := len(doc.order)
	if len(data)%nCurves != 0 {
		return nil, &ParseError{Msg: fmt.Sprintf("sample data not aligned: %d values across %d curves", len(data), nCurves)}
	}

	// Tokenizing the whole ~ASCII section into one flat list and slicing by
	// curve count handles wrapped and unwrapped files identically.
	nRows := len(data) / nCurves
	for ci, mnem := range doc.order {
		samples := make([]float64, nRows)
		for ri := 0; ri < nRows; ri++ {
			v := data[ri*nCurves+ci]
			if v == nullValue {
				v = NullValue
			}
			samples[ri] = v
		}
		doc.curves[mnem].Samples = samples
	}

	return doc, nil
}

func sectionFor(line string) section {
	if len(line) < 2 {
		return sectionOther
	}
	switch line[1] {
	case 'V', 'v':
		return sectionVersion
	case 'W', 'w':
		return sectionWell
	case 'C', 'c':
		return sectionCurve
	case 'P', 'p':
		return sectionParameter
	case 'A', 'a':
		return sectionASCII
	default:
		return sectionOther
	}
}

// splitHeaderLine parses the "MNEM.UNIT   VALUE : DESCRIPTION" layout shared
// by the ~Well and ~Curve sections. The mnemonic ends at the first dot, the
// unit at the first whitespace after it, and the value runs to the last
// colon on the line.
func splitHeaderLine(line string) (mnem, unit, value string, err error) {
	dot := strings.Index(line, ".")
	if dot < 0 {
		return "", "", "", fmt.Errorf("header line missing '.': %q", line)
	}
	mnem = normalizeMnemonic(line[:dot])
	if mnem == "" {
		return "", "", "", fmt.Errorf("header line missing mnemonic: %q", line)
	}

	rest := line[dot+1:]
	end := strings.IndexFunc(rest, func(r rune) bool { return r == ' ' || r == '\t' })
	if end < 0 {
		end = len(rest)
	}
	unit = strings.TrimSpace(rest[:end])
	rest = rest[end:]

	if colon := strings.LastIndex(rest, ":"); colon >= 0 {
		rest = rest[:colon]
	}
	value = strings.TrimSpace(rest)
	return mnem, unit, value, nil
}

func headerDescription(line string) string {
	if colon := strings.LastIndex(line, ":"); colon >= 0 {
		return strings.TrimSpace(line[colon+1:])
	}
	return ""
}
