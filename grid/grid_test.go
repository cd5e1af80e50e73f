package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFromRows_RingIsBackground checks that the OUTSIDE ring reads as
// Background and that TargetCount equals the number of positive inputs.
//
// Grid:
//
//	1 0 2
//	0 1 0
func TestFromRows_RingIsBackground(t *testing.T) {
	g, err := FromRows([][]int{
		{1, 0, 2},
		{0, 1, 0},
	})
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols())
	require.Equal(t, 5, g.Stride())
	require.Equal(t, 3, g.TargetCount())
	require.Equal(t, 3, g.ForegroundCount())

	for c := -1; c <= g.Cols(); c++ {
		require.Equal(t, Background, g.At(-1, c))
		require.Equal(t, Background, g.At(g.Rows(), c))
	}
	for r := -1; r <= g.Rows(); r++ {
		require.Equal(t, Background, g.At(r, -1))
		require.Equal(t, Background, g.At(r, g.Cols()))
	}
	require.Equal(t, Unlabeled, g.At(0, 2))
	require.True(t, g.Foreground(1, 1))
	require.False(t, g.Foreground(1, 2))
	// far outside the ring
	require.Equal(t, Background, g.At(10, 10))
}

func TestFromRows_Invalid(t *testing.T) {
	_, err := FromRows(nil)
	require.ErrorIs(t, err, ErrEmptyGrid)
	_, err = FromRows([][]int{{}})
	require.ErrorIs(t, err, ErrEmptyGrid)
	_, err = FromRows([][]int{{1}, {1, 0}})
	require.ErrorIs(t, err, ErrNonRectangular)
	_, err = New(0, 3)
	require.ErrorIs(t, err, ErrEmptyGrid)
}

func TestSetAndSetForeground(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	require.Equal(t, 0, g.TargetCount())

	require.NoError(t, g.SetForeground(0, 1, true))
	require.NoError(t, g.SetForeground(0, 1, true)) // idempotent
	require.Equal(t, 1, g.TargetCount())
	require.NoError(t, g.SetForeground(0, 1, false))
	require.Equal(t, 0, g.TargetCount())

	require.NoError(t, g.Set(1, 1, 7))
	require.Equal(t, Label(7), g.At(1, 1))
	require.ErrorIs(t, g.Set(2, 0, 1), ErrOutOfRange)
	require.ErrorIs(t, g.SetForeground(-1, 0, true), ErrOutOfRange)
}

func TestCloneIsDeep(t *testing.T) {
	g := MustParse(`
		#.
		.#
	`)
	cp := g.Clone()
	require.NoError(t, cp.Set(0, 0, 5))
	require.Equal(t, Unlabeled, g.At(0, 0))
	require.Equal(t, Label(5), cp.At(0, 0))
	require.Equal(t, g.TargetCount(), cp.TargetCount())
}

func TestBinarizeAndValues(t *testing.T) {
	g, err := New(2, 3)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 0, 3))
	require.NoError(t, g.Set(1, 2, 1))
	require.Equal(t, []Label{1, 3}, g.Distinct())

	g.Binarize()
	require.Equal(t, 2, g.TargetCount())
	require.Equal(t, [][]uint32{{1, 0, 0}, {0, 0, 1}}, g.Values())
	require.Empty(t, g.Distinct())
}

func TestParse(t *testing.T) {
	g, err := Parse("\n  #.x \n 0X1\n\n")
	require.NoError(t, err)
	require.Equal(t, [][]uint32{{1, 0, 1}, {0, 1, 1}}, g.Values())

	_, err = Parse("#?")
	require.ErrorIs(t, err, ErrBadCell)
	_, err = Parse("..\n#·")
	require.ErrorIs(t, err, ErrBadCell)
	require.Contains(t, err.Error(), "row 1 col 1:")
	_, err = Parse("##\n#")
	require.ErrorIs(t, err, ErrNonRectangular)
	_, err = Parse("  \n")
	require.ErrorIs(t, err, ErrEmptyGrid)
	require.Panics(t, func() { MustParse("") })
}

func TestLabelIsLabel(t *testing.T) {
	require.False(t, Background.IsLabel())
	require.False(t, Unlabeled.IsLabel())
	require.True(t, Label(1).IsLabel())
}
