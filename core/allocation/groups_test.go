package allocation

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("examinee-%02d", i)
	}
	return out
}

func TestExportGroupsMismatch(t *testing.T) {
	p, err := ComputePlan(buildCatalog(t, 2), schedule(1, 5))
	require.NoError(t, err)
	_, err = ExportGroups(p, records(4))
	require.ErrorIs(t, err, ErrRecordCountMismatch)
	var ce *CountMismatchError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 5, ce.Expected)
	assert.Equal(t, 4, ce.Got)
}

func TestExportGroupsLayout(t *testing.T) {
	p, err := ComputePlan(buildCatalog(t, 2, 3), schedule(2, 12))
	require.NoError(t, err)
	groups, err := ExportGroups(p, records(12))
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, 1, groups[0].Day)
	assert.Equal(t, 1, groups[0].Round)
	assert.Equal(t, "R1", groups[0].Label)
	require.Len(t, groups[0].Entries, 5)
	assert.Equal(t, "examinee-00", groups[0].Entries[0].Record)
	assert.Equal(t, "L1", groups[0].Entries[1].Unit.Name)
	assert.Equal(t, "L2", groups[0].Entries[2].Unit.Name)

	last, ok := Lookup(groups, 2, 1)
	require.True(t, ok)
	assert.Equal(t, []string{"examinee-10", "examinee-11"}, []string{last.Entries[0].Record, last.Entries[1].Record})
	_, ok = Lookup(groups, 2, 2)
	assert.False(t, ok)

	days := GroupByDay(groups)
	require.Len(t, days, 2)
	assert.Len(t, days[0], 2)
	assert.Len(t, days[1], 1)
}

func TestExportGroupsPartition(t *testing.T) {
	p, err := ComputePlan(buildCatalog(t, 3, 1, 2), schedule(3, 50))
	require.NoError(t, err)
	recs := records(50)
	before := clonePlan(p)
	groups, err := ExportGroups(p, recs)
	require.NoError(t, err)

	seen := make(map[string]int)
	prev := -1
	for _, g := range groups {
		assert.Equal(t, p.SlotCount(g.Day, g.Round), len(g.Entries))
		for _, e := range g.Entries {
			seen[e.Record]++
			assert.Equal(t, prev+1, e.Index)
			assert.Equal(t, recs[e.Index], e.Record)
			prev = e.Index
		}
	}
	assert.Len(t, seen, 50)
	for r, n := range seen {
		assert.Equal(t, 1, n, r)
	}
	if !reflect.DeepEqual(before, p) {
		t.Fatalf("plan mutated")
	}
}

func TestExportGroupsEmpty(t *testing.T) {
	p, err := ComputePlan(buildCatalog(t, 2), schedule(1, 0))
	require.NoError(t, err)
	groups, err := ExportGroups[string](p, nil)
	require.NoError(t, err)
	assert.Empty(t, groups)
	assert.Empty(t, GroupByDay(groups))
}
