package metrics

import "github.com/kilianp07/examdist/core/factory"

var recorderRegistry = factory.NewRegistry[PlanRecorder]()

// RegisterRecorder adds a recorder factory identified by name.
func RegisterRecorder(name string, f factory.Factory[PlanRecorder]) error {
	return recorderRegistry.Register(name, f)
}

// NewRecorder creates a PlanRecorder from the provided configuration.
func NewRecorder(cfgs []factory.ModuleConfig) (PlanRecorder, error) {
	if len(cfgs) == 0 {
		return NopRecorder{}, nil
	}
	if len(cfgs) == 1 {
		return recorderRegistry.Create(cfgs[0])
	}
	recs := make([]PlanRecorder, len(cfgs))
	for i, c := range cfgs {
		r, err := recorderRegistry.Create(c)
		if err != nil {
			return nil, err
		}
		recs[i] = r
	}
	return NewMultiRecorder(recs...), nil
}
