package allocation

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryTableGrid(t *testing.T) {
	p, err := ComputePlan(buildCatalog(t, 2, 3), schedule(2, 12))
	require.NoError(t, err)
	tbl := SummaryTable(p)
	assert.Equal(t, []string{"Day", "Round 1", "Round 2"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, TableRow{Day: 1, Counts: []int{5, 5}}, tbl.Rows[0])
	assert.Equal(t, TableRow{Day: 2, Counts: []int{2, 0}}, tbl.Rows[1])
	assert.Equal(t, 12, tbl.Total())
}

func TestSummaryTableString(t *testing.T) {
	p, err := ComputePlan(buildCatalog(t, 3), schedule(1, 4))
	require.NoError(t, err)
	want := "" +
		"-----------------\n" +
		"Day     Round 1     \n" +
		"-----------------\n" +
		"1       3           \n" +
		"2       1           \n"
	assert.Equal(t, want, SummaryTable(p).String())
}

func TestSummaryTableReadOnly(t *testing.T) {
	p, err := ComputePlan(buildCatalog(t, 2), schedule(2, 5))
	require.NoError(t, err)
	before := clonePlan(p)
	tbl := SummaryTable(p)
	tbl.Rows[0].Counts[0] = 99
	_ = Report(p)
	if !reflect.DeepEqual(before, p) {
		t.Fatalf("plan mutated")
	}
}

func TestUtilizationStats(t *testing.T) {
	p, err := ComputePlan(buildCatalog(t, 4), schedule(2, 10))
	require.NoError(t, err)
	// counts: day1 4,4 ; day2 2,0
	assert.Equal(t, []float64{1, 1, 0.5}, Utilization(p))
	s := Stats(p)
	assert.Equal(t, 3, s.Rounds)
	assert.InDelta(t, 2.5/3, s.Mean, 1e-9)
	assert.InDelta(t, 0.5, s.Min, 1e-9)
	assert.Greater(t, s.StdDev, 0.0)

	single, err := ComputePlan(buildCatalog(t, 4), schedule(1, 2))
	require.NoError(t, err)
	assert.Equal(t, UtilizationStats{Mean: 0.5, Min: 0.5, Rounds: 1}, Stats(single))

	empty, err := ComputePlan(buildCatalog(t, 4), schedule(1, 0))
	require.NoError(t, err)
	assert.Equal(t, UtilizationStats{}, Stats(empty))
}

func TestReport(t *testing.T) {
	p, err := ComputePlan(buildCatalog(t, 2, 3), schedule(2, 12))
	require.NoError(t, err)
	r := Report(p)
	for _, want := range []string{
		"Exam Distribution Summary",
		"Total Examinees       : 12",
		"Number of Centers     : 1",
		"Number of Labs        : 2",
		"Rounds per Day        : 2",
		"Capacity Per Round    : 5",
		"Total Daily Capacity  : 10",
		"Recommended Days      : 2",
		"Round Utilization",
		"  Round 2: R2",
		"Distribution Table (Per Day & Round):",
		"2       2           0           ",
	} {
		assert.True(t, strings.Contains(r, want), "missing %q in\n%s", want, r)
	}
}

func TestReportNoItems(t *testing.T) {
	p, err := ComputePlan(buildCatalog(t, 2), schedule(1, 0))
	require.NoError(t, err)
	r := Report(p)
	assert.Contains(t, r, "Recommended Days      : 0")
	assert.NotContains(t, r, "Round Utilization")
}

func clonePlan(p *Plan) *Plan {
	c := *p
	c.RoundLabels = append([]string(nil), p.RoundLabels...)
	c.Units = append(c.Units[:0:0], p.Units...)
	c.Centers = append([]string(nil), p.Centers...)
	c.Assignments = append(c.Assignments[:0:0], p.Assignments...)
	c.SlotCounts = make([][]int, len(p.SlotCounts))
	for i, row := range p.SlotCounts {
		c.SlotCounts[i] = append([]int(nil), row...)
	}
	return &c
}
