package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setup(t *testing.T, examinees int) (cfg, workbook, out string) {
	t.Helper()
	dir := t.TempDir()
	workbook = filepath.Join(dir, "examinees.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Applicants"))
	require.NoError(t, f.SetSheetRow("Applicants", "A1", &[]any{"ID", "Name"}))
	for i := 0; i < examinees; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Applicants", cell, &[]any{i + 1, fmt.Sprintf("E%d", i+1)}))
	}
	require.NoError(t, f.SaveAs(workbook))
	require.NoError(t, f.Close())

	out = filepath.Join(dir, "out")
	cfg = filepath.Join(dir, "config.yaml")
	data := fmt.Sprintf(`input:
  path: %q
rounds:
  - from: "09:00"
    to: "11:00"
centers:
  - name: "North"
    labs:
      - name: "A"
        capacity: 3
logging:
  level: "error"
`, workbook)
	require.NoError(t, os.WriteFile(cfg, []byte(data), 0o644))
	return cfg, workbook, out
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	planOpts, exportOpts = planFlags{}, planFlags{}
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestPlanCommand(t *testing.T) {
	cfg, _, _ := setup(t, 7)
	out, err := execute(t, "plan", "-c", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Recommended Days      : 3")
	assert.Contains(t, out, "Round 1: 09:00 - 11:00")
}

func TestExportCommand(t *testing.T) {
	cfg, _, dir := setup(t, 4)
	out, err := execute(t, "export", "-c", cfg, "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Files exported")
	for _, name := range []string{"Day_1.xlsx", "Day_2.xlsx"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestSheetsCommand(t *testing.T) {
	_, workbook, _ := setup(t, 1)
	out, err := execute(t, "sheets", workbook)
	require.NoError(t, err)
	assert.Equal(t, "Applicants\n", out)
}

func TestPlanCommandMissingConfig(t *testing.T) {
	_, err := execute(t, "plan", "-c", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
