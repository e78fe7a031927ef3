package metrics

import (
	"time"

	"github.com/kilianp07/examdist/core/allocation"
)

// PlanEvent summarises one computed allocation plan.
type PlanEvent struct {
	RunID            string
	Time             time.Time
	TotalItems       int
	Centers          int
	Units            int
	RoundsPerDay     int
	CapacityPerRound int
	DailyCapacity    int
	DaysNeeded       int
	// SlotCounts[d][r] mirrors allocation.Plan.SlotCounts.
	SlotCounts [][]int
	Duration   time.Duration
}

// NewPlanEvent builds the event for p. The slot grid is copied.
func NewPlanEvent(runID string, p *allocation.Plan, took time.Duration, at time.Time) PlanEvent {
	counts := make([][]int, len(p.SlotCounts))
	for i, row := range p.SlotCounts {
		counts[i] = append([]int(nil), row...)
	}
	return PlanEvent{
		RunID:            runID,
		Time:             at,
		TotalItems:       p.TotalItems,
		Centers:          len(p.Centers),
		Units:            len(p.Units),
		RoundsPerDay:     p.RoundsPerDay,
		CapacityPerRound: p.CapacityPerRound,
		DailyCapacity:    p.DailyCapacity,
		DaysNeeded:       p.DaysNeeded,
		SlotCounts:       counts,
		Duration:         took,
	}
}

// PlanRecorder records computed plans for observability purposes.
type PlanRecorder interface {
	RecordPlan(ev PlanEvent) error
}

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) RecordPlan(PlanEvent) error { return nil }

// MultiRecorder fans out events to several recorders.
type MultiRecorder struct {
	Recorders []PlanRecorder
}

// NewMultiRecorder creates a MultiRecorder with the provided recorders.
func NewMultiRecorder(recs ...PlanRecorder) *MultiRecorder {
	return &MultiRecorder{Recorders: recs}
}

// RecordPlan forwards the event to all recorders, returning the first error encountered.
func (m *MultiRecorder) RecordPlan(ev PlanEvent) error {
	for _, r := range m.Recorders {
		if err := r.RecordPlan(ev); err != nil {
			return err
		}
	}
	return nil
}
