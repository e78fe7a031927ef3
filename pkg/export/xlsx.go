package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// XLSXExporter writes one workbook per day with one sheet per round.
type XLSXExporter struct {
	Dir string
	// Parallel bounds the number of workbooks written at once; <= 0 means 4.
	Parallel int
}

func (e *XLSXExporter) Name() string { return "xlsx" }

// Export writes Day_<d>.xlsx files. Rounds without examinees get no sheet.
func (e *XLSXExporter) Export(ctx context.Context, b Batch) error {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return err
	}
	limit := e.Parallel
	if limit <= 0 {
		limit = 4
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, day := range b.Days() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return e.writeDay(b, day)
		})
	}
	return g.Wait()
}

func (e *XLSXExporter) writeDay(b Batch, groups []Group) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	header := b.OutputHeader()
	for i, g := range groups {
		sheet := roundSheet(g.Round)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet: %w", err)
		}
		if err := writeRow(f, sheet, 1, header); err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(header), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
		for r, entry := range g.Entries {
			if err := writeRow(f, sheet, r+2, b.Row(g, entry)); err != nil {
				return err
			}
		}
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("failed to freeze panes: %w", err)
		}
	}
	path := filepath.Join(e.Dir, dayFile(groups[0].Day, "xlsx"))
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return f.SetSheetRow(sheet, cell, &vals)
}
