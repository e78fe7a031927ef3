package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LoggingConfig defines diagnostic log settings.
type LoggingConfig struct {
	// Level is a zerolog level name.
	Level string `json:"level"`
	// Format is "json" or "console".
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level and format names.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	switch c.Format {
	case "", "json", "console":
		return nil
	}
	return fmt.Errorf("logging: unknown format %s", c.Format)
}
