package scenarios

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/examdist/core/allocation"
	"github.com/kilianp07/examdist/core/catalog"
	"github.com/kilianp07/examdist/core/model"
)

type LabDef struct {
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
}

type CenterDef struct {
	Name string   `yaml:"name"`
	Link string   `yaml:"link,omitempty"`
	Labs []LabDef `yaml:"labs"`
}

func (c CenterDef) ToModel() model.Center {
	labs := make([]model.Lab, len(c.Labs))
	for i, l := range c.Labs {
		labs[i] = model.Lab{Name: l.Name, Capacity: l.Capacity}
	}
	return model.Center{Name: c.Name, Link: c.Link, Labs: labs}
}

type Expected struct {
	Days       int     `yaml:"days"`
	SlotCounts [][]int `yaml:"slot_counts,omitempty"`
	// Error names the failure: invalid_capacity, empty_catalog,
	// invalid_config or record_mismatch.
	Error string `yaml:"error,omitempty"`
}

type Scenario struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Centers     []CenterDef `yaml:"centers"`
	Rounds      []string    `yaml:"rounds"`
	Items       int         `yaml:"items"`
	// Records overrides the number of records passed to ExportGroups;
	// nil means Items.
	Records  *int     `yaml:"records,omitempty"`
	Expected Expected `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func parseError(name string) (error, error) {
	switch name {
	case "":
		return nil, nil
	case "invalid_capacity":
		return catalog.ErrInvalidCapacity, nil
	case "empty_catalog":
		return catalog.ErrEmptyCatalog, nil
	case "invalid_config":
		return allocation.ErrInvalidConfig, nil
	case "record_mismatch":
		return allocation.ErrRecordCountMismatch, nil
	}
	return nil, fmt.Errorf("unknown expected error %q", name)
}
