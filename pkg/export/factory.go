package export

import (
	"path/filepath"

	"github.com/kilianp07/examdist/core/factory"
)

// DefaultDir is where files land when no directory is configured.
const DefaultDir = "Exam_Distribution"

var registry = factory.NewRegistry[Exporter]()

type fileConf struct {
	Dir  string `json:"dir"`
	Path string `json:"path"`
}

func decodeFileConf(conf map[string]any, file string) (fileConf, error) {
	var c fileConf
	if err := factory.Decode(conf, &c); err != nil {
		return c, err
	}
	if c.Dir == "" {
		c.Dir = DefaultDir
	}
	if c.Path == "" {
		c.Path = filepath.Join(c.Dir, file)
	}
	return c, nil
}

func init() {
	registry.MustRegister("xlsx", func(conf map[string]any) (Exporter, error) {
		c, err := decodeFileConf(conf, "")
		if err != nil {
			return nil, err
		}
		return &XLSXExporter{Dir: c.Dir}, nil
	})
	registry.MustRegister("csv", func(conf map[string]any) (Exporter, error) {
		c, err := decodeFileConf(conf, "")
		if err != nil {
			return nil, err
		}
		return &CSVExporter{Dir: c.Dir}, nil
	})
	registry.MustRegister("json", func(conf map[string]any) (Exporter, error) {
		c, err := decodeFileConf(conf, "distribution.json")
		if err != nil {
			return nil, err
		}
		return &JSONExporter{Path: c.Path}, nil
	})
	registry.MustRegister("sqlite", func(conf map[string]any) (Exporter, error) {
		c, err := decodeFileConf(conf, "distribution.db")
		if err != nil {
			return nil, err
		}
		return &SQLiteExporter{Path: c.Path}, nil
	})
}

// Formats lists the registered exporter types.
func Formats() []string { return registry.Names() }

// New builds exporters from cfgs. dir, when set, is used by every config
// that does not name its own directory. With no configs a single xlsx
// exporter is returned.
func New(cfgs []factory.ModuleConfig, dir string) (Exporter, error) {
	if len(cfgs) == 0 {
		cfgs = []factory.ModuleConfig{{Type: "xlsx"}}
	}
	exps := make([]Exporter, 0, len(cfgs))
	for _, c := range cfgs {
		conf := make(map[string]any, len(c.Conf)+1)
		for k, v := range c.Conf {
			conf[k] = v
		}
		if _, ok := conf["dir"]; !ok && dir != "" {
			conf["dir"] = dir
		}
		e, err := registry.Create(factory.ModuleConfig{Type: c.Type, Conf: conf})
		if err != nil {
			return nil, err
		}
		exps = append(exps, e)
	}
	if len(exps) == 1 {
		return exps[0], nil
	}
	return &MultiExporter{Exporters: exps}, nil
}
