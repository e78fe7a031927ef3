package config

import (
	"github.com/kilianp07/examdist/core/factory"
	"github.com/kilianp07/examdist/pkg/export"
)

// ExportConfig selects where and how rosters are written.
type ExportConfig struct {
	// Dir is the default output directory for file based exporters.
	Dir string `json:"dir"`
	// Sinks lists exporters; empty means a single xlsx exporter.
	Sinks []factory.ModuleConfig `json:"sinks"`
}

// SetDefaults applies sane defaults.
func (c *ExportConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = export.DefaultDir
	}
}
