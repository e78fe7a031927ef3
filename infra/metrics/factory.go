package metrics

import (
	"github.com/kilianp07/examdist/core/factory"
	coremetrics "github.com/kilianp07/examdist/core/metrics"
)

// init registers built-in plan recorders.
func init() {
	_ = coremetrics.RegisterRecorder("nop", func(map[string]any) (coremetrics.PlanRecorder, error) {
		return coremetrics.NopRecorder{}, nil
	})

	_ = coremetrics.RegisterRecorder("prometheus", func(conf map[string]any) (coremetrics.PlanRecorder, error) {
		var c struct {
			Textfile string `json:"textfile"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewPromSink(c.Textfile)
	})

	_ = coremetrics.RegisterRecorder("influx", func(conf map[string]any) (coremetrics.PlanRecorder, error) {
		var c struct {
			URL    string `json:"url"`
			Token  string `json:"token"`
			Org    string `json:"org"`
			Bucket string `json:"bucket"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewInfluxSinkWithFallback(c.URL, c.Token, c.Org, c.Bucket), nil
	})
}
