package metrics

import "github.com/kilianp07/examdist/core/factory"

// Config defines the metrics recorders to build.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}
