package allocation

import (
	"fmt"

	"github.com/kilianp07/examdist/core/catalog"
	"github.com/kilianp07/examdist/core/model"
)

// Assignment places one item. Day and Round are 1-based, Item is the 0-based
// input position and UnitIndex points into Plan.Units.
type Assignment struct {
	Item      int
	Day       int
	Round     int
	UnitIndex int
	Unit      model.ResourceUnit
}

// Plan is the outcome of ComputePlan. It must be treated as read only.
type Plan struct {
	TotalItems       int
	RoundsPerDay     int
	RoundLabels      []string
	Units            []model.ResourceUnit
	Centers          []string
	CapacityPerRound int
	DailyCapacity    int
	DaysNeeded       int
	// SlotCounts[d][r] is the number of items placed on day d+1, round r+1.
	SlotCounts  [][]int
	Assignments []Assignment
}

// ComputePlan runs the greedy fill walk over cat for cfg.
func ComputePlan(cat *catalog.Catalog, cfg model.ScheduleConfig) (*Plan, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := cat.Validate(cfg.TotalItems); err != nil {
		return nil, err
	}

	perRound := cat.TotalRoundCapacity()
	daily := perRound * cfg.RoundsPerDay
	// Unreachable for catalogs from catalog.Build, which rejects seatless
	// labs and reports an empty catalog through Validate above.
	if daily == 0 && cfg.TotalItems > 0 {
		return nil, fmt.Errorf("%w: %d items to place", ErrZeroCapacity, cfg.TotalItems)
	}
	days := 0
	if cfg.TotalItems > 0 {
		days = (cfg.TotalItems + daily - 1) / daily
	}

	p := &Plan{
		TotalItems:       cfg.TotalItems,
		RoundsPerDay:     cfg.RoundsPerDay,
		RoundLabels:      append([]string(nil), cfg.RoundLabels...),
		Units:            cat.Units(),
		Centers:          cat.Centers(),
		CapacityPerRound: perRound,
		DailyCapacity:    daily,
		DaysNeeded:       days,
		SlotCounts:       make([][]int, days),
		Assignments:      make([]Assignment, 0, cfg.TotalItems),
	}
	for d := range p.SlotCounts {
		p.SlotCounts[d] = make([]int, cfg.RoundsPerDay)
	}

	next := 0
walk:
	for d := 0; d < days; d++ {
		for r := 0; r < cfg.RoundsPerDay; r++ {
			for ui, u := range p.Units {
				for seat := 0; seat < u.Capacity; seat++ {
					if next >= cfg.TotalItems {
						break walk
					}
					p.Assignments = append(p.Assignments, Assignment{
						Item:      next,
						Day:       d + 1,
						Round:     r + 1,
						UnitIndex: ui,
						Unit:      u,
					})
					p.SlotCounts[d][r]++
					next++
				}
			}
		}
	}
	if next != cfg.TotalItems {
		return nil, fmt.Errorf("%w: placed %d of %d items", ErrCapacityOverflow, next, cfg.TotalItems)
	}
	return p, nil
}

func validateConfig(cfg model.ScheduleConfig) error {
	switch {
	case cfg.TotalItems < 0:
		return fmt.Errorf("%w: negative item count %d", ErrInvalidConfig, cfg.TotalItems)
	case cfg.RoundsPerDay < 1:
		return fmt.Errorf("%w: rounds per day must be positive, got %d", ErrInvalidConfig, cfg.RoundsPerDay)
	case len(cfg.RoundLabels) != cfg.RoundsPerDay:
		return fmt.Errorf("%w: %d round labels for %d rounds", ErrInvalidConfig, len(cfg.RoundLabels), cfg.RoundsPerDay)
	}
	return nil
}

// SlotCount returns the number of items placed on the 1-based day and round,
// or 0 outside the plan.
func (p *Plan) SlotCount(day, round int) int {
	if day < 1 || day > len(p.SlotCounts) || round < 1 || round > p.RoundsPerDay {
		return 0
	}
	return p.SlotCounts[day-1][round-1]
}

// RoundLabel returns the label of the 1-based round.
func (p *Plan) RoundLabel(round int) string {
	if round < 1 || round > len(p.RoundLabels) {
		return ""
	}
	return p.RoundLabels[round-1]
}
