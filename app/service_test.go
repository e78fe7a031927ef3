package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kilianp07/examdist/config"
	"github.com/kilianp07/examdist/core/allocation"
	"github.com/kilianp07/examdist/core/catalog"
	"github.com/kilianp07/examdist/core/factory"
)

func writeRoster(t *testing.T, n int) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"ID", "Name"}))
	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &[]any{i + 1, fmt.Sprintf("Examinee %d", i+1)}))
	}
	path := filepath.Join(t.TempDir(), "examinees.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func testConfig(t *testing.T, input string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Input:  config.InputConfig{Path: input},
		Rounds: []config.RoundConfig{{From: "09:00", To: "11:00"}, {From: "12:00", To: "14:00"}},
		Centers: []config.CenterConfig{
			{Name: "North", Link: "https://maps/n", Labs: []config.LabConfig{{Name: "N1", Capacity: 3}}},
			{Name: "South", Labs: []config.LabConfig{{Name: "S1", Capacity: 2}}},
		},
		Export: config.ExportConfig{
			Dir:   filepath.Join(dir, "out"),
			Sinks: []factory.ModuleConfig{{Type: "xlsx"}, {Type: "json"}},
		},
	}
}

func TestServicePlanAndExport(t *testing.T) {
	cfg := testConfig(t, writeRoster(t, 23))
	prom := filepath.Join(t.TempDir(), "examdist.prom")
	cfg.Metrics.Sinks = []factory.ModuleConfig{{Type: "prometheus", Conf: map[string]any{"textfile": prom}}}

	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()

	run, err := svc.Plan(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 23, run.Plan.TotalItems)
	assert.Equal(t, 3, run.Plan.DaysNeeded)
	assert.True(t, strings.Contains(run.Report(), "Recommended Days      : 3"))

	require.NoError(t, svc.Export(context.Background(), run))
	for _, name := range []string{"Day_1.xlsx", "Day_2.xlsx", "Day_3.xlsx", "distribution.json"} {
		_, err := os.Stat(filepath.Join(cfg.Export.Dir, name))
		assert.NoError(t, err, name)
	}
	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), "examdist_days_needed 3")
}

func TestServiceErrors(t *testing.T) {
	cfg := testConfig(t, "")
	svc, err := New(cfg)
	require.NoError(t, err)
	_, err = svc.Plan(context.Background())
	assert.Error(t, err)

	cfg = testConfig(t, writeRoster(t, 4))
	cfg.Centers[1].Labs[0].Capacity = 0
	svc, err = New(cfg)
	require.NoError(t, err)
	_, err = svc.Plan(context.Background())
	assert.ErrorIs(t, err, catalog.ErrInvalidCapacity)

	cfg = testConfig(t, writeRoster(t, 4))
	cfg.Centers = nil
	svc, err = New(cfg)
	require.NoError(t, err)
	_, err = svc.Plan(context.Background())
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)

	cfg = testConfig(t, writeRoster(t, 4))
	cfg.Rounds = nil
	svc, err = New(cfg)
	require.NoError(t, err)
	_, err = svc.Plan(context.Background())
	assert.ErrorIs(t, err, allocation.ErrInvalidConfig)

	cfg = testConfig(t, "")
	cfg.Export.Sinks = []factory.ModuleConfig{{Type: "pdf"}}
	_, err = New(cfg)
	assert.Error(t, err)
}

func TestServiceCanceled(t *testing.T) {
	cfg := testConfig(t, writeRoster(t, 4))
	svc, err := New(cfg)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Plan(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
