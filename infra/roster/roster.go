// Package roster reads examinee lists from xlsx workbooks. The first row of
// a sheet is the header; every following non-blank row is one examinee, in
// sheet order.
package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheet is returned when a workbook has no sheet to read.
var ErrNoSheet = errors.New("workbook has no sheets")

// Record is one examinee row, aligned with Roster.Header.
type Record struct {
	Values []string
}

// Get returns the value of the named column or "".
func (r Record) Get(header []string, column string) string {
	for i, h := range header {
		if h == column && i < len(r.Values) {
			return r.Values[i]
		}
	}
	return ""
}

// Roster is the content of one sheet.
type Roster struct {
	Sheet   string
	Header  []string
	Records []Record
}

// Len returns the number of examinees.
func (r *Roster) Len() int { return len(r.Records) }

// Sheets lists the sheet names of the workbook at path.
func Sheets(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// Read loads the named sheet. An empty sheet name selects the first sheet.
func Read(path, sheet string) (*Roster, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return FromFile(f, sheet)
}

// FromFile reads a sheet from an already opened workbook.
func FromFile(f *excelize.File, sheet string) (*Roster, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, ErrNoSheet
		}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	r := &Roster{Sheet: sheet}
	if len(rows) == 0 {
		return r, nil
	}
	r.Header = make([]string, len(rows[0]))
	for i, h := range rows[0] {
		r.Header[i] = strings.TrimSpace(h)
	}
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		width := len(r.Header)
		if len(row) > width {
			width = len(row)
		}
		vals := make([]string, width)
		copy(vals, row)
		r.Records = append(r.Records, Record{Values: vals})
	}
	return r, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
