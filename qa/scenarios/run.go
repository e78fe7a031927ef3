package scenarios

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kilianp07/examdist/core/allocation"
	"github.com/kilianp07/examdist/core/catalog"
	"github.com/kilianp07/examdist/core/model"
)

// Execute builds the catalog, computes the plan and projects records onto
// it, stopping at the first failure.
func Execute(sc *Scenario) (*allocation.Plan, error) {
	centers := make([]model.Center, len(sc.Centers))
	for i, c := range sc.Centers {
		centers[i] = c.ToModel()
	}
	cat, err := catalog.Build(centers)
	if err != nil {
		return nil, err
	}
	plan, err := allocation.ComputePlan(cat, model.ScheduleConfig{
		RoundsPerDay: len(sc.Rounds),
		RoundLabels:  sc.Rounds,
		TotalItems:   sc.Items,
	})
	if err != nil {
		return nil, err
	}
	n := sc.Items
	if sc.Records != nil {
		n = *sc.Records
	}
	if _, err := allocation.ExportGroups(plan, make([]int, n)); err != nil {
		return plan, err
	}
	return plan, nil
}

func RunScenario(t *testing.T, sc *Scenario) {
	want, err := parseError(sc.Expected.Error)
	if err != nil {
		t.Fatalf("%s: %v", sc.Name, err)
	}
	plan, err := Execute(sc)
	if want != nil {
		if !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
		return
	}
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.DaysNeeded != sc.Expected.Days {
		t.Errorf("days: expected %d got %d", sc.Expected.Days, plan.DaysNeeded)
	}
	if sc.Expected.SlotCounts != nil && !reflect.DeepEqual(plan.SlotCounts, sc.Expected.SlotCounts) {
		t.Errorf("slot counts: expected %v got %v", sc.Expected.SlotCounts, plan.SlotCounts)
	}
	if got := allocation.SummaryTable(plan).Total(); got != sc.Items {
		t.Errorf("placed %d of %d items", got, sc.Items)
	}
}
