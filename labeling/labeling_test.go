package labeling_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvlabel/equiv"
	"github.com/katalvlaran/lvlabel/generate"
	"github.com/katalvlaran/lvlabel/grid"
	"github.com/katalvlaran/lvlabel/labeling"
	"github.com/katalvlaran/lvlabel/validate"
)

func randomGrid(t testing.TB, rows, cols int, seed int64, threshold int) *grid.Grid {
	t.Helper()
	res, err := generate.Random(rows, cols, generate.WithSeed(seed), generate.WithThreshold(threshold))
	require.NoError(t, err)
	return res.Grid
}

// TestLabel_RandomMatchesOracle labels many random grids of several shapes
// and densities and checks every property of a correct labeling.
func TestLabel_RandomMatchesOracle(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 17}, {17, 1}, {7, 9}, {32, 32}, {61, 45}}
	thresholds := []int{40, 100, 128, 160, 220}
	for _, sh := range shapes {
		for _, th := range thresholds {
			for seed := int64(1); seed <= 5; seed++ {
				name := fmt.Sprintf("%dx%d/th=%d/seed=%d", sh[0], sh[1], th, seed)
				t.Run(name, func(t *testing.T) {
					g := randomGrid(t, sh[0], sh[1], seed, th)
					want := g.TargetCount()

					res, err := labeling.Label(g)
					require.NoError(t, err)

					rep := validate.Check(g, want)
					require.NoError(t, rep.Err(), rep.String())
					require.NoError(t, validate.MatchesOracle(g))
					require.Equal(t, len(validate.Components(g)), res.Components)
					require.Equal(t, res.Components, rep.Components)
					require.LessOrEqual(t, res.Components, res.Provisional)
				})
			}
		}
	}
}

// TestLabel_Deterministic labels the same input twice.
func TestLabel_Deterministic(t *testing.T) {
	a := randomGrid(t, 40, 50, 99, 128)
	b := a.Clone()
	_, err := labeling.Label(a)
	require.NoError(t, err)
	_, err = labeling.Label(b)
	require.NoError(t, err)
	if diff := cmp.Diff(a.Values(), b.Values()); diff != "" {
		t.Fatalf("labeling is not deterministic (-first +second):\n%s", diff)
	}
}

// TestLabel_Idempotent feeds a labeled grid back through the pipeline, both
// as-is (value > 0 is foreground) and after Binarize.
func TestLabel_Idempotent(t *testing.T) {
	g := randomGrid(t, 30, 30, 5, 150)
	_, err := labeling.Label(g)
	require.NoError(t, err)
	first := g.Clone()

	again := g.Clone()
	_, err = labeling.Label(again)
	require.NoError(t, err)
	require.NoError(t, validate.SamePartition(first, again))
	require.Empty(t, cmp.Diff(first.Values(), again.Values()))

	bin := g.Clone()
	bin.Binarize()
	require.Equal(t, first.ForegroundCount(), bin.TargetCount())
	_, err = labeling.Label(bin)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(first.Values(), bin.Values()))
}

// TestLabel_OptionsAgree checks that the backward pass and path compression
// change nothing observable in the output.
func TestLabel_OptionsAgree(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		base := randomGrid(t, 25, 35, seed, 140)
		want := base.Clone()
		_, err := labeling.Label(want)
		require.NoError(t, err)

		for _, opts := range [][]labeling.Option{
			{labeling.WithBackwardPass(false)},
			{labeling.WithPathCompression(true)},
			{labeling.WithBackwardPass(false), labeling.WithPathCompression(true)},
		} {
			got := base.Clone()
			_, err := labeling.New(opts...).Label(got)
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(want.Values(), got.Values()), "seed %d", seed)
		}
	}
}

// TestLabel_Spiral exercises long merge chains: a single spiral path whose
// arms receive many provisional labels.
func TestLabel_Spiral(t *testing.T) {
	g := grid.MustParse(`
		xxxxxxxxx
		........x
		xxxxxxx.x
		x.....x.x
		x.xxx.x.x
		x.x...x.x
		x.xxxxx.x
		x.......x
		xxxxxxxxx
	`)
	want := g.TargetCount()
	res, err := labeling.Label(g)
	require.NoError(t, err)
	require.Equal(t, 1, res.Components)
	require.NoError(t, validate.Check(g, want).Err())
	require.Equal(t, []grid.Label{1}, g.Distinct())
}

func TestLabel_Comb(t *testing.T) {
	// Teeth hang from a bar at the bottom; each tooth gets its own label
	// in the forward pass and all of them merge on the last row.
	const teeth = 40
	rows := make([][]int, 6)
	for r := range rows {
		rows[r] = make([]int, 2*teeth-1)
		for c := range rows[r] {
			if r == len(rows)-1 || c%2 == 0 {
				rows[r][c] = 1
			}
		}
	}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	res, err := labeling.Label(g)
	require.NoError(t, err)
	require.Equal(t, 1, res.Components)
	require.Equal(t, teeth, res.Provisional)
	require.Equal(t, teeth-1, res.Merges)
}

func TestLabel_CapacityExceeded(t *testing.T) {
	g := grid.MustParse(`
		x.x.x
		.....
		x.x.x
	`)
	_, err := labeling.Label(g, labeling.WithMaxLabels(5))
	require.ErrorIs(t, err, equiv.ErrCapacityExceeded)
	require.Contains(t, err.Error(), "labeling 3x5 grid")

	ok := grid.MustParse("x.x.x\n.....\nx.x.x")
	res, err := labeling.Label(ok, labeling.WithMaxLabels(6))
	require.NoError(t, err)
	require.Equal(t, 6, res.Components)
}

func TestLabel_NilGridAndOptionPanics(t *testing.T) {
	_, err := labeling.Label(nil)
	require.ErrorIs(t, err, grid.ErrNilGrid)
	require.Panics(t, func() { labeling.WithMaxLabels(0) })
	require.Panics(t, func() { labeling.WithLogger(nil) })
}

func TestLabel_LogsPhases(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g := grid.MustParse("xx\n.x")
	_, err := labeling.Label(g, labeling.WithLogger(zap.New(core)))
	require.NoError(t, err)

	var msgs []string
	for _, e := range logs.All() {
		msgs = append(msgs, e.Message)
	}
	require.Equal(t, []string{
		"labeling: scan done",
		"labeling: resolve done",
		"labeling: compress done",
	}, msgs)
	require.EqualValues(t, 2, logs.All()[0].ContextMap()["rows"])
}
