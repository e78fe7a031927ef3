package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/examdist/core/metrics"
)

// EnvPrefix marks environment variables overriding file values. A double
// underscore separates path segments: EXAMDIST_INPUT__SHEET=Applicants.
const EnvPrefix = "EXAMDIST_"

type Config struct {
	Input   InputConfig    `json:"input"`
	Rounds  []RoundConfig  `json:"rounds"`
	Centers []CenterConfig `json:"centers"`
	Export  ExportConfig   `json:"export"`
	Metrics metrics.Config `json:"metrics"`
	Logging LoggingConfig  `json:"logging"`
}

// InputConfig locates the examinee workbook.
type InputConfig struct {
	Path string `json:"path"`
	// Sheet defaults to the first sheet of the workbook.
	Sheet string `json:"sheet"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Logging.SetDefaults()
	cfg.Export.SetDefaults()
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the schedule sections. Capacities are left to the
// catalog, which reports the offending lab.
func (c *Config) Validate() error {
	for i, ctr := range c.Centers {
		if strings.TrimSpace(ctr.Name) == "" {
			return fmt.Errorf("centers[%d]: name is required", i)
		}
		for j, lab := range ctr.Labs {
			if strings.TrimSpace(lab.Name) == "" {
				return fmt.Errorf("centers[%d].labs[%d]: name is required", i, j)
			}
		}
	}
	return nil
}
