package labeling

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlabel/equiv"
	"github.com/katalvlaran/lvlabel/grid"
)

func newRun(t *testing.T, g *grid.Grid, capacity int) *run {
	t.Helper()
	tb, err := equiv.New(capacity)
	require.NoError(t, err)
	return &run{g: g, cells: g.Cells(), stride: g.Stride(), t: tb}
}

func TestResolveThenCompress(t *testing.T) {
	g := grid.MustParse("xx")
	r := newRun(t, g, 2)
	for i := 0; i < 2; i++ {
		_, err := r.t.NewLabel()
		require.NoError(t, err)
	}
	merged, err := r.t.Union(1, 2)
	require.NoError(t, err)
	require.True(t, merged)
	require.NoError(t, g.Set(0, 0, 2))
	require.NoError(t, g.Set(0, 1, 2))

	// label 2 points at 1, so compressing before resolving is a fault.
	_, err = r.compress()
	require.ErrorIs(t, err, equiv.ErrMalformedTable)
	require.True(t, errors.HasAssertionFailure(err))

	require.NoError(t, r.resolve())
	k, err := r.compress()
	require.NoError(t, err)
	require.Equal(t, 1, k)
	require.Equal(t, [][]uint32{{1, 1}}, g.Values())
}

func TestAssign_NoTableEntry(t *testing.T) {
	g := grid.MustParse("xx\nxx")
	r := newRun(t, g, 4)
	// 3 is in range but was never allocated.
	require.NoError(t, g.Set(0, 1, 3))
	require.NoError(t, g.Set(1, 0, 3))

	err := r.assign(g.Index(1, 1), 3, 3)
	require.ErrorIs(t, err, equiv.ErrMalformedTable)
	require.True(t, errors.HasAssertionFailure(err))
}

// TestResolve_CorruptedTable leaves a cell holding a label the table never
// allocated; the fault reaches the caller as ErrMalformedTable.
func TestResolve_CorruptedTable(t *testing.T) {
	g := grid.MustParse("x.x")
	r := newRun(t, g, 3)
	require.NoError(t, r.forward())
	require.Equal(t, 2, r.t.Len())
	require.NoError(t, g.Set(0, 2, 3))

	err := r.resolve()
	require.ErrorIs(t, err, equiv.ErrMalformedTable)
	require.True(t, errors.HasAssertionFailure(err))
	require.Contains(t, err.Error(), "resolve at (0,2)")
}

func TestMinPresent(t *testing.T) {
	require.Equal(t, grid.Label(0), minPresent(0, 0))
	require.Equal(t, grid.Label(4), minPresent(0, 4))
	require.Equal(t, grid.Label(4), minPresent(4, 0))
	require.Equal(t, grid.Label(2), minPresent(5, 2))
}
