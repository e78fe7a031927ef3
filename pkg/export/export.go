// Package export writes allocation rosters to files. Each exporter receives
// the same Batch, built once from the plan, so every output format agrees
// with the previewed report.
package export

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kilianp07/examdist/core/allocation"
	"github.com/kilianp07/examdist/infra/roster"
)

// Columns appended to every exported examinee row.
var Columns = []string{"Center", "Lab", "Day Number", "Time", "Round Number", "Center Link"}

// Group is a slot of roster records.
type Group = allocation.SlotGroup[roster.Record]

// Batch is the input shared by all exporters.
type Batch struct {
	RunID string
	// Header names every source column, as built by SourceColumns.
	Header []string
	Plan   *allocation.Plan
	Groups []Group
}

// NewBatch projects the roster onto the plan.
func NewBatch(runID string, p *allocation.Plan, r *roster.Roster) (Batch, error) {
	groups, err := allocation.ExportGroups(p, r.Records)
	if err != nil {
		return Batch{}, err
	}
	return Batch{RunID: runID, Header: SourceColumns(r), Plan: p, Groups: groups}, nil
}

// SourceColumns widens the roster header to its widest record. Blank names
// become "Column <n>" and repeated names get a ".<k>" suffix, so every cell
// has a unique column.
func SourceColumns(r *roster.Roster) []string {
	width := len(r.Header)
	for _, rec := range r.Records {
		if len(rec.Values) > width {
			width = len(rec.Values)
		}
	}
	cols := make([]string, width)
	seen := make(map[string]int, width)
	for i := range cols {
		name := ""
		if i < len(r.Header) {
			name = r.Header[i]
		}
		if name == "" {
			name = fmt.Sprintf("Column %d", i+1)
		}
		base := name
		for seen[name] > 0 {
			name = fmt.Sprintf("%s.%d", base, seen[base])
			seen[base]++
		}
		seen[name]++
		cols[i] = name
	}
	return cols
}

// Days splits the batch groups per day.
func (b Batch) Days() [][]Group {
	return allocation.GroupByDay(b.Groups)
}

// OutputHeader is the source header followed by Columns.
func (b Batch) OutputHeader() []string {
	out := make([]string, 0, len(b.Header)+len(Columns))
	out = append(out, b.Header...)
	return append(out, Columns...)
}

// Row renders one entry as strings aligned with OutputHeader.
func (b Batch) Row(g Group, e allocation.Entry[roster.Record]) []string {
	width := len(b.Header)
	if len(e.Record.Values) > width {
		width = len(e.Record.Values)
	}
	out := make([]string, width, width+len(Columns))
	copy(out, e.Record.Values)
	return append(out,
		e.Unit.Center,
		e.Unit.Name,
		strconv.Itoa(g.Day),
		g.Label,
		strconv.Itoa(g.Round),
		e.Unit.Link,
	)
}

// Exporter writes a batch somewhere.
type Exporter interface {
	Name() string
	Export(ctx context.Context, b Batch) error
}

// MultiExporter runs exporters in order and stops at the first failure.
type MultiExporter struct {
	Exporters []Exporter
}

// Name lists the wrapped exporter names.
func (m *MultiExporter) Name() string {
	name := "multi("
	for i, e := range m.Exporters {
		if i > 0 {
			name += ","
		}
		name += e.Name()
	}
	return name + ")"
}

// Export forwards the batch to every exporter.
func (m *MultiExporter) Export(ctx context.Context, b Batch) error {
	for _, e := range m.Exporters {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.Export(ctx, b); err != nil {
			return fmt.Errorf("%s: %w", e.Name(), err)
		}
	}
	return nil
}

func dayFile(day int, ext string) string {
	return fmt.Sprintf("Day_%d.%s", day, ext)
}

func roundSheet(round int) string {
	return fmt.Sprintf("Round_%d", round)
}
