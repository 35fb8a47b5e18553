// Package config loads viewer defaults from JSON. Fields omitted from the
// file keep their built-in defaults, so partial configs are safe; request
// query parameters override everything here per request.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/banshee-data/welllog.report/internal/units"
	"github.com/banshee-data/welllog.report/internal/welllog"
)

// TrackAssignment names a display track and lists the curves assigned to
// it. A curve may appear in any number of tracks.
type TrackAssignment struct {
	Name   string   `json:"name"`
	Curves []string `json:"curves"`
}

// ViewerConfig is the root configuration. Pointer fields distinguish
// "omitted" from zero values; use the Get* accessors for resolved values.
type ViewerConfig struct {
	ListenAddr         *string           `json:"listen_addr,omitempty"`
	DBPath             *string           `json:"db_path,omitempty"`
	MigrationsDir      *string           `json:"migrations_dir,omitempty"`
	DefaultSystem      *string           `json:"default_system,omitempty"`
	Tracks             []TrackAssignment `json:"tracks,omitempty"`
	HighlightCurve     *string           `json:"highlight_curve,omitempty"`
	HighlightThreshold *float64          `json:"highlight_threshold,omitempty"`
}

// EmptyViewerConfig returns a ViewerConfig with all fields unset.
func EmptyViewerConfig() *ViewerConfig {
	return &ViewerConfig{}
}

// LoadViewerConfig loads a ViewerConfig from a JSON file. The path must
// carry a .json extension and stay under the max file size.
func LoadViewerConfig(path string) (*ViewerConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyViewerConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *ViewerConfig) Validate() error {
	if c.DefaultSystem != nil {
		if _, err := units.ParseSystem(*c.DefaultSystem); err != nil {
			return err
		}
	}
	if c.HighlightThreshold != nil {
		if math.IsNaN(*c.HighlightThreshold) || math.IsInf(*c.HighlightThreshold, 0) {
			return fmt.Errorf("highlight_threshold must be finite, got %f", *c.HighlightThreshold)
		}
	}
	for i, t := range c.Tracks {
		if t.Name == "" {
			return fmt.Errorf("tracks[%d] missing name", i)
		}
		if len(t.Curves) == 0 {
			return fmt.Errorf("track %q has no curves", t.Name)
		}
	}
	return nil
}

// GetListenAddr returns the listen address or the default.
func (c *ViewerConfig) GetListenAddr() string {
	if c.ListenAddr == nil || *c.ListenAddr == "" {
		return ":8080"
	}
	return *c.ListenAddr
}

// GetDBPath returns the well database path or the default.
func (c *ViewerConfig) GetDBPath() string {
	if c.DBPath == nil || *c.DBPath == "" {
		return "wells.db"
	}
	return *c.DBPath
}

// GetMigrationsDir returns the migrations directory or the default.
func (c *ViewerConfig) GetMigrationsDir() string {
	if c.MigrationsDir == nil || *c.MigrationsDir == "" {
		return "migrations"
	}
	return *c.MigrationsDir
}

// GetDefaultSystem returns the configured measurement system or Metric.
func (c *ViewerConfig) GetDefaultSystem() units.System {
	if c.DefaultSystem == nil {
		return units.Metric
	}
	system, err := units.ParseSystem(*c.DefaultSystem)
	if err != nil {
		return units.Metric
	}
	return system
}

// GetTracks returns the configured track assignments or the conventional
// triple-combo default.
func (c *ViewerConfig) GetTracks() []TrackAssignment {
	if len(c.Tracks) > 0 {
		return c.Tracks
	}
	return []TrackAssignment{
		{Name: "Gamma Ray / Caliper", Curves: []string{"GR", "CALI"}},
		{Name: "Porosity / Density", Curves: []string{"NPHI", "RHOB"}},
		{Name: "Resistivity", Curves: []string{"RT", "ILD"}},
	}
}

// GetHighlight returns the highlight policy or the gamma-ray default.
func (c *ViewerConfig) GetHighlight() welllog.HighlightPolicy {
	hp := welllog.DefaultHighlight
	if c.HighlightCurve != nil && *c.HighlightCurve != "" {
		hp.Curve = *c.HighlightCurve
	}
	if c.HighlightThreshold != nil {
		hp.Threshold = *c.HighlightThreshold
	}
	return hp
}
