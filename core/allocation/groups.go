package allocation

import "github.com/kilianp07/examdist/core/model"

// Entry pairs a caller supplied record with the unit it was assigned to.
type Entry[R any] struct {
	Index  int
	Record R
	Unit   model.ResourceUnit
}

// SlotGroup lists the entries placed in one (day, round) slot in original
// item order.
type SlotGroup[R any] struct {
	Day     int
	Round   int
	Label   string
	Entries []Entry[R]
}

// ExportGroups projects records onto the plan. records must hold exactly
// p.TotalItems elements; record i is the item at position i. Only slots
// holding at least one item are returned, in fill order.
func ExportGroups[R any](p *Plan, records []R) ([]SlotGroup[R], error) {
	if len(records) != p.TotalItems {
		return nil, &CountMismatchError{Expected: p.TotalItems, Got: len(records)}
	}
	var groups []SlotGroup[R]
	for _, a := range p.Assignments {
		n := len(groups)
		if n == 0 || groups[n-1].Day != a.Day || groups[n-1].Round != a.Round {
			groups = append(groups, SlotGroup[R]{
				Day:     a.Day,
				Round:   a.Round,
				Label:   p.RoundLabel(a.Round),
				Entries: make([]Entry[R], 0, p.SlotCount(a.Day, a.Round)),
			})
			n++
		}
		groups[n-1].Entries = append(groups[n-1].Entries, Entry[R]{
			Index:  a.Item,
			Record: records[a.Item],
			Unit:   a.Unit,
		})
	}
	return groups, nil
}

// Lookup returns the group for the 1-based day and round.
func Lookup[R any](groups []SlotGroup[R], day, round int) (SlotGroup[R], bool) {
	for _, g := range groups {
		if g.Day == day && g.Round == round {
			return g, true
		}
	}
	return SlotGroup[R]{}, false
}

// GroupByDay splits groups into one slice per day, preserving order.
func GroupByDay[R any](groups []SlotGroup[R]) [][]SlotGroup[R] {
	var days [][]SlotGroup[R]
	for _, g := range groups {
		n := len(days)
		if n == 0 || days[n-1][0].Day != g.Day {
			days = append(days, nil)
			n++
		}
		days[n-1] = append(days[n-1], g)
	}
	return days
}
