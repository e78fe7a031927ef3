package model

import "strings"

// ScheduleConfig holds the per-run parameters of an allocation.
type ScheduleConfig struct {
	RoundsPerDay int
	RoundLabels  []string
	TotalItems   int
}

// Round is a time window within a day.
type Round struct {
	From  string
	To    string
	Label string
}

// String returns the explicit label when set, otherwise "From - To".
func (r Round) String() string {
	if r.Label != "" {
		return r.Label
	}
	from, to := strings.TrimSpace(r.From), strings.TrimSpace(r.To)
	switch {
	case from == "" && to == "":
		return ""
	case to == "":
		return from
	case from == "":
		return to
	}
	return from + " - " + to
}

// RoundLabels converts rounds to their display labels.
func RoundLabels(rounds []Round) []string {
	labels := make([]string, len(rounds))
	for i, r := range rounds {
		labels[i] = r.String()
	}
	return labels
}
