package viewer

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/banshee-data/welllog.report/internal/wellstore"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Well Log Viewer</title>
<style>
body { font-family: sans-serif; margin: 2em; background: #1e1e1e; color: #ddd; }
a { color: #6ec6ff; }
table { border-collapse: collapse; margin-top: 1em; }
td, th { border: 1px solid #444; padding: 0.4em 0.8em; }
</style>
</head>
<body>
<h1>Well Log Viewer</h1>
<form action="/api/wells/upload" method="post" enctype="multipart/form-data">
  <input type="file" name="las" accept=".las" required>
  <button type="submit">Upload LAS</button>
</form>
<h2>Recent wells</h2>
{{if .Wells}}
<table>
<tr><th>Well</th><th>File</th><th>Curves</th><th>Samples</th><th>Uploaded</th><th>Tracks</th><th>Export</th></tr>
{{range .Wells}}{{$well := .}}
<tr>
  <td>{{.WellName}}</td>
  <td>{{.Filename}}</td>
  <td>{{.Curves}}</td>
  <td>{{.Samples}}</td>
  <td>{{.UploadedAt.Format "2006-01-02 15:04"}}</td>
  <td>{{range $.TrackNames}}<a href="/wells/track?well_id={{$well.ID}}&track={{.}}">{{.}}</a> {{end}}</td>
  <td><a href="/wells/export.csv?well_id={{$well.ID}}">CSV</a> <a href="/api/well/las?well_id={{$well.ID}}">LAS</a></td>
</tr>
{{end}}
</table>
{{else}}
<p>No wells uploaded yet.</p>
{{end}}
</body>
</html>
`))

type indexData struct {
	Wells      []wellstore.WellRecord
	TrackNames []string
}

// handleIndex renders a minimal landing page: upload form plus recent
// uploads with track and export links.
func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	wells, err := ws.store.ListRecent(20)
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to list wells: %v", err))
		return
	}

	data := indexData{Wells: wells}
	for _, t := range ws.cfg.GetTracks() {
		data.TrackNames = append(data.TrackNames, t.Name)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Printf("index template error: %v", err)
	}
}
