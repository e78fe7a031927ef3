package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
)

// CSVExporter writes one Day_<d>.csv file per day holding every round.
type CSVExporter struct {
	Dir string
}

func (e *CSVExporter) Name() string { return "csv" }

func (e *CSVExporter) Export(ctx context.Context, b Batch) error {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return err
	}
	for _, day := range b.Days() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.writeDay(b, day); err != nil {
			return err
		}
	}
	return nil
}

func (e *CSVExporter) writeDay(b Batch, groups []Group) (err error) {
	f, err := os.Create(filepath.Join(e.Dir, dayFile(groups[0].Day, "csv")))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	cw := csv.NewWriter(f)
	if err := cw.Write(b.OutputHeader()); err != nil {
		return err
	}
	for _, g := range groups {
		for _, entry := range g.Entries {
			if err := cw.Write(b.Row(g, entry)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
