package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kilianp07/examdist/core/allocation"
)

// JSONExporter writes the whole distribution into a single document.
type JSONExporter struct {
	Path string
}

type jsonDoc struct {
	RunID            string     `json:"run_id"`
	TotalItems       int        `json:"total_items"`
	RoundsPerDay     int        `json:"rounds_per_day"`
	CapacityPerRound int        `json:"capacity_per_round"`
	DailyCapacity    int        `json:"daily_capacity"`
	DaysNeeded       int        `json:"days_needed"`
	Summary          [][]int    `json:"summary"`
	Slots            []jsonSlot `json:"slots"`
}

type jsonSlot struct {
	Day     int         `json:"day"`
	Round   int         `json:"round"`
	Time    string      `json:"time"`
	Entries []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	Index  int               `json:"index"`
	Center string            `json:"center"`
	Lab    string            `json:"lab"`
	Link   string            `json:"link,omitempty"`
	Record map[string]string `json:"record"`
}

func (e *JSONExporter) Name() string { return "json" }

func (e *JSONExporter) Export(ctx context.Context, b Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := jsonDoc{
		RunID:            b.RunID,
		TotalItems:       b.Plan.TotalItems,
		RoundsPerDay:     b.Plan.RoundsPerDay,
		CapacityPerRound: b.Plan.CapacityPerRound,
		DailyCapacity:    b.Plan.DailyCapacity,
		DaysNeeded:       b.Plan.DaysNeeded,
		Summary:          [][]int{},
		Slots:            make([]jsonSlot, 0, len(b.Groups)),
	}
	for _, row := range allocation.SummaryTable(b.Plan).Rows {
		doc.Summary = append(doc.Summary, row.Counts)
	}
	for _, g := range b.Groups {
		slot := jsonSlot{Day: g.Day, Round: g.Round, Time: g.Label, Entries: make([]jsonEntry, 0, len(g.Entries))}
		for _, en := range g.Entries {
			slot.Entries = append(slot.Entries, jsonEntry{
				Index:  en.Index,
				Center: en.Unit.Center,
				Lab:    en.Unit.Name,
				Link:   en.Unit.Link,
				Record: recordMap(b.Header, en.Record.Values),
			})
		}
		doc.Slots = append(doc.Slots, slot)
	}

	if err := os.MkdirAll(filepath.Dir(e.Path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(e.Path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// recordMap keys values by column. Cells past the header are keyed
// "Column <n>".
func recordMap(header, values []string) map[string]string {
	m := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(values) {
			m[h] = values[i]
		} else {
			m[h] = ""
		}
	}
	for i := len(header); i < len(values); i++ {
		m[fmt.Sprintf("Column %d", i+1)] = values[i]
	}
	return m
}
