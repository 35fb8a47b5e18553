// Package viewer serves the well-log browsing UI: LAS uploads, curve
// inventory APIs, track charts, and CSV export.
package viewer

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/banshee-data/welllog.report/internal/config"
	"github.com/banshee-data/welllog.report/internal/wellstore"
)

// WebServer handles the HTTP interface for browsing uploaded well logs.
type WebServer struct {
	address string
	store   *wellstore.Store
	cfg     *config.ViewerConfig
	server  *http.Server
}

// WebServerConfig contains configuration options for the web server.
type WebServerConfig struct {
	Address string
	Store   *wellstore.Store
	Config  *config.ViewerConfig
}

// NewWebServer creates a new web server with the provided configuration.
func NewWebServer(c WebServerConfig) *WebServer {
	cfg := c.Config
	if cfg == nil {
		cfg = config.EmptyViewerConfig()
	}
	ws := &WebServer{
		address: c.Address,
		store:   c.Store,
		cfg:     cfg,
	}

	ws.server = &http.Server{
		Addr:    ws.address,
		Handler: ws.setupRoutes(),
	}

	return ws
}

func (ws *WebServer) writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// setupRoutes configures the HTTP routes and handlers.
func (ws *WebServer) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", ws.handleHealth)
	mux.HandleFunc("/api/wells/upload", ws.handleUpload)
	mux.HandleFunc("/api/wells", ws.handleWells)
	mux.HandleFunc("/api/well/curves", ws.handleWellCurves)
	mux.HandleFunc("/api/well/meta", ws.handleWellMeta)
	mux.HandleFunc("/api/well/stats", ws.handleWellStats)
	mux.HandleFunc("/api/well/las", ws.handleWellRaw)
	mux.HandleFunc("/api/well/delete", ws.handleWellDelete)
	mux.HandleFunc("/wells/track", ws.handleTrackChart)
	mux.HandleFunc("/wells/export.csv", ws.handleExportCSV)
	mux.HandleFunc("/", ws.handleIndex)

	return mux
}

// Handler exposes the route table for tests.
func (ws *WebServer) Handler() http.Handler {
	return ws.server.Handler
}

// Start begins the HTTP server in a goroutine and handles graceful shutdown
// when the context is cancelled.
func (ws *WebServer) Start(ctx context.Context) error {
	go func() {
		log.Printf("Starting HTTP server on %s", ws.address)
		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ws.server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
		if err := ws.server.Close(); err != nil {
			log.Printf("HTTP server force close error: %v", err)
		}
	}

	log.Printf("HTTP server routine stopped")
	return nil
}

func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
