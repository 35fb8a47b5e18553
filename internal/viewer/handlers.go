package viewer

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/banshee-data/welllog.report/internal/export"
	"github.com/banshee-data/welllog.report/internal/las"
	"github.com/banshee-data/welllog.report/internal/units"
	"github.com/banshee-data/welllog.report/internal/welllog"
)

const maxUploadBytes = 32 << 20

// handleUpload accepts a multipart LAS upload in field "las", parses it,
// and stores it. Parse failures are fatal for the upload: no partial
// document is kept and the client is asked for a fresh file.
func (ws *WebServer) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		ws.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		ws.writeJSONError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("las")
	if err != nil {
		ws.writeJSONError(w, http.StatusBadRequest, "missing 'las' file field")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		ws.writeJSONError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	doc, err := las.Parse(bytes.NewReader(raw))
	if err != nil {
		ws.writeJSONError(w, http.StatusUnprocessableEntity, fmt.Sprintf("failed to parse LAS file: %v", err))
		return
	}

	id, err := ws.store.Put(doc, header.Filename, raw)
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store well: %v", err))
		return
	}

	wellName, _ := doc.Well("WELL")
	log.Printf("stored well %s (%s): %d curves, %d samples", id, header.Filename, len(doc.CurveNames()), doc.SampleCount())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"well_id":   id,
		"well_name": wellName,
		"curves":    doc.CurveNames(),
		"samples":   doc.SampleCount(),
	})
}

// handleWells lists recent uploads.
func (ws *WebServer) handleWells(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		ws.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	wells, err := ws.store.ListRecent(limit)
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to list wells: %v", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wells)
}

// loadDocument resolves the well_id query param to a parsed document,
// writing the error response itself on failure.
func (ws *WebServer) loadDocument(w http.ResponseWriter, r *http.Request) (*las.Document, bool) {
	id := r.URL.Query().Get("well_id")
	if id == "" {
		ws.writeJSONError(w, http.StatusBadRequest, "missing 'well_id' parameter")
		return nil, false
	}
	doc, err := ws.store.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ws.writeJSONError(w, http.StatusNotFound, "no well with that id")
		} else {
			ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to load well: %v", err))
		}
		return nil, false
	}
	return doc, true
}

func (ws *WebServer) handleWellCurves(w http.ResponseWriter, r *http.Request) {
	doc, ok := ws.loadDocument(w, r)
	if !ok {
		return
	}

	type curveInfo struct {
		Mnemonic    string `json:"mnemonic"`
		Unit        string `json:"unit"`
		Description string `json:"description"`
		Valid       int    `json:"valid"`
		Total       int    `json:"total"`
	}
	infos := make([]curveInfo, 0, len(doc.CurveNames()))
	for _, c := range doc.Curves() {
		infos = append(infos, curveInfo{
			Mnemonic:    c.Mnemonic,
			Unit:        c.Unit,
			Description: c.Description,
			Valid:       welllog.ValidCount(c.Samples),
			Total:       len(c.Samples),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(infos)
}

func (ws *WebServer) handleWellMeta(w http.ResponseWriter, r *http.Request) {
	doc, ok := ws.loadDocument(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc.WellMeta())
}

func (ws *WebServer) handleWellStats(w http.ResponseWriter, r *http.Request) {
	doc, ok := ws.loadDocument(w, r)
	if !ok {
		return
	}

	names := parseCurvesParam(r.URL.Query().Get("curves"))
	if len(names) == 0 {
		names = doc.CurveNames()
	}

	stats := make([]welllog.CurveStats, 0, len(names))
	for _, name := range names {
		curve, ok := doc.Curve(name)
		if !ok {
			continue
		}
		// Curves with zero valid samples still report their counts so the
		// UI can explain why no trace is drawn.
		st, _ := welllog.Stats(curve)
		stats = append(stats, st)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// handleWellRaw serves the original LAS text back for download, under the
// filename it was uploaded with.
func (ws *WebServer) handleWellRaw(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		ws.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	id := r.URL.Query().Get("well_id")
	if id == "" {
		ws.writeJSONError(w, http.StatusBadRequest, "missing 'well_id' parameter")
		return
	}
	raw, filename, err := ws.store.Raw(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ws.writeJSONError(w, http.StatusNotFound, "no well with that id")
		} else {
			ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to load well: %v", err))
		}
		return
	}
	if filename == "" {
		filename = "well.las"
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(raw)
}

// handleWellDelete removes a stored upload.
func (ws *WebServer) handleWellDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		ws.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	id := r.URL.Query().Get("well_id")
	if id == "" {
		ws.writeJSONError(w, http.StatusBadRequest, "missing 'well_id' parameter")
		return
	}
	if err := ws.store.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ws.writeJSONError(w, http.StatusNotFound, "no well with that id")
		} else {
			ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to delete well: %v", err))
		}
		return
	}
	log.Printf("deleted well %s", id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"deleted": id})
}

// handleTrackChart renders one track as a go-echarts HTML page.
// Query params:
//   - well_id (required)
//   - curves (comma-separated) or track (configured track name); curves wins
//   - system (metric|imperial; default from config)
//   - tops (newline-separated "name, depth" lines; lenient)
//   - highlight ("off", or "CURVE:threshold"; default from config)
func (ws *WebServer) handleTrackChart(w http.ResponseWriter, r *http.Request) {
	doc, ok := ws.loadDocument(w, r)
	if !ok {
		return
	}

	system, err := units.ParseSystem(r.URL.Query().Get("system"))
	if err != nil {
		ws.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if r.URL.Query().Get("system") == "" {
		system = ws.cfg.GetDefaultSystem()
	}

	title, names, err := ws.resolveTrackSelection(r)
	if err != nil {
		ws.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	depth, err := welllog.ResolveDepth(doc)
	if err != nil {
		// Fatal per the depth contract: no synthetic index, no chart.
		ws.writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	highlight, err := ws.resolveHighlight(r.URL.Query().Get("highlight"))
	if err != nil {
		ws.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	spec := welllog.BuildTrack(doc, depth, title, names, system, highlight)
	for _, d := range spec.Diagnostics {
		log.Printf("track %q: %s", title, d)
	}
	if len(spec.Series) == 0 {
		ws.writeJSONError(w, http.StatusNotFound, "no plottable curves in track")
		return
	}

	tops := welllog.RescaleTops(welllog.ParseTops(r.URL.Query().Get("tops")), system)

	var buf bytes.Buffer
	if err := RenderTrack(spec, tops, &buf); err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render chart: %v", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// handleExportCSV streams selected curves plus depth as CSV. Values are raw
// and unconverted regardless of the active measurement system.
func (ws *WebServer) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	doc, ok := ws.loadDocument(w, r)
	if !ok {
		return
	}

	depth, err := welllog.ResolveDepth(doc)
	if err != nil {
		ws.writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	names := parseCurvesParam(r.URL.Query().Get("curves"))
	if len(names) == 0 {
		for _, n := range doc.CurveNames() {
			if n != depth.Mnemonic {
				names = append(names, n)
			}
		}
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="well_export.csv"`)
	if err := export.Export(doc, depth, names, w); err != nil {
		log.Printf("csv export failed: %v", err)
	}
}

// resolveTrackSelection returns the track title and curve list from either
// the explicit curves param or a configured track name.
func (ws *WebServer) resolveTrackSelection(r *http.Request) (string, []string, error) {
	if curves := parseCurvesParam(r.URL.Query().Get("curves")); len(curves) > 0 {
		return strings.Join(curves, " / "), curves, nil
	}
	trackName := r.URL.Query().Get("track")
	if trackName == "" {
		return "", nil, fmt.Errorf("missing 'curves' or 'track' parameter")
	}
	for _, t := range ws.cfg.GetTracks() {
		if strings.EqualFold(t.Name, trackName) {
			return t.Name, t.Curves, nil
		}
	}
	return "", nil, fmt.Errorf("unknown track %q", trackName)
}

// resolveHighlight parses the highlight param: empty keeps the configured
// default, "off" disables, "CURVE:threshold" overrides.
func (ws *WebServer) resolveHighlight(param string) (*welllog.HighlightPolicy, error) {
	switch param {
	case "":
		hp := ws.cfg.GetHighlight()
		return &hp, nil
	case "off", "none":
		return nil, nil
	}
	curve, thresholdStr, found := strings.Cut(param, ":")
	if !found || curve == "" {
		return nil, fmt.Errorf("highlight must be 'off' or 'CURVE:threshold', got %q", param)
	}
	threshold, err := strconv.ParseFloat(thresholdStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid highlight threshold %q", thresholdStr)
	}
	return &welllog.HighlightPolicy{Curve: curve, Threshold: threshold}, nil
}

func parseCurvesParam(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
