package validate

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlabel/grid"
)

// Components finds all 4-connected regions of foreground cells in g by
// breadth-first search, ignoring label values. Each component is a slice
// of interior indices r*cols+c, in BFS order; components are ordered by
// their first cell in row-major order.
//
// To convert an index back to (r,c), use r, c := idx/cols, idx%cols.
//
// Time:   O(rows·cols·4).
// Memory: O(rows·cols) for visited flags and output.
func Components(g *grid.Grid) [][]int {
	rows, cols := g.Rows(), g.Cols()
	seen := make([]bool, rows*cols)
	var comps [][]int

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !g.Foreground(r, c) {
				continue
			}
			i0 := r*cols + c
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				ur, uc := u/cols, u%cols
				for _, d := range neighbors {
					vr, vc := ur+d[0], uc+d[1]
					if !g.InBounds(vr, vc) || !g.Foreground(vr, vc) {
						continue
					}
					vi := vr*cols + vc
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// MatchesOracle reports whether g's labels group cells exactly as the BFS
// components do: one label per component, a different label for each.
func MatchesOracle(g *grid.Grid) error {
	if g == nil {
		return grid.ErrNilGrid
	}
	cols := g.Cols()
	owner := make(map[grid.Label]int)
	for ci, comp := range Components(g) {
		first := g.At(comp[0]/cols, comp[0]%cols)
		for _, idx := range comp[1:] {
			if v := g.At(idx/cols, idx%cols); v != first {
				return errors.Wrapf(ErrPartitionMismatch,
					"component %d holds labels %d and %d", ci, first, v)
			}
		}
		if prev, ok := owner[first]; ok {
			return errors.Wrapf(ErrPartitionMismatch,
				"label %d shared by components %d and %d", first, prev, ci)
		}
		owner[first] = ci
	}
	return nil
}

// SamePartition reports whether a and b have the same foreground cells and
// group them into the same components, regardless of label values.
func SamePartition(a, b *grid.Grid) error {
	if a == nil || b == nil {
		return grid.ErrNilGrid
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return errors.Wrapf(ErrShapeMismatch, "%dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	ab := make(map[grid.Label]grid.Label)
	ba := make(map[grid.Label]grid.Label)
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			va, vb := a.At(r, c), b.At(r, c)
			if (va == grid.Background) != (vb == grid.Background) {
				return errors.Wrapf(ErrPartitionMismatch, "foreground differs at (%d,%d)", r, c)
			}
			if va == grid.Background {
				continue
			}
			if m, ok := ab[va]; ok && m != vb {
				return errors.Wrapf(ErrPartitionMismatch, "label %d maps to %d and %d", va, m, vb)
			}
			if m, ok := ba[vb]; ok && m != va {
				return errors.Wrapf(ErrPartitionMismatch, "label %d maps back to %d and %d", vb, m, va)
			}
			ab[va], ba[vb] = vb, va
		}
	}
	return nil
}
