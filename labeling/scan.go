package labeling

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlabel/equiv"
	"github.com/katalvlaran/lvlabel/grid"
)

// forward visits interior cells top-to-bottom, left-to-right. The cell above
// and the cell to the left have already been labeled; ring cells read as
// Background.
func (r *run) forward() error {
	rows, cols := r.g.Rows(), r.g.Cols()
	for row := 0; row < rows; row++ {
		i := r.g.Index(row, 0)
		for c := 0; c < cols; c, i = c+1, i+1 {
			if r.cells[i] == grid.Background {
				continue
			}
			up, left := r.cells[i-r.stride], r.cells[i-1]
			if up == grid.Background && left == grid.Background {
				l, err := r.t.NewLabel()
				if err != nil {
					return errors.Wrapf(err, "forward scan at (%d,%d)", row, c)
				}
				r.cells[i] = l
				continue
			}
			if err := r.assign(i, up, left); err != nil {
				return errors.Wrapf(err, "forward scan at (%d,%d)", row, c)
			}
		}
	}
	return nil
}

// backward visits interior cells bottom-to-top, right-to-left and looks at
// the cells below and to the right. It never allocates.
func (r *run) backward() error {
	rows, cols := r.g.Rows(), r.g.Cols()
	for row := rows - 1; row >= 0; row-- {
		i := r.g.Index(row, cols-1)
		for c := cols - 1; c >= 0; c, i = c-1, i-1 {
			if r.cells[i] == grid.Background {
				continue
			}
			down, right := r.cells[i+r.stride], r.cells[i+1]
			if down == grid.Background && right == grid.Background {
				continue
			}
			if err := r.assign(i, down, right); err != nil {
				return errors.Wrapf(err, "backward scan at (%d,%d)", row, c)
			}
		}
	}
	return nil
}

// assign gives cell i the smaller of its two neighbors' parent labels and
// merges the neighbors' classes. A Background neighbor resolves to 0 and
// drops out, so a single labeled neighbor is simply inherited.
func (r *run) assign(i int, a, b grid.Label) error {
	pa, pb := r.t.Find(a), r.t.Find(b)
	l := minPresent(pa, pb)
	if l == 0 {
		return errors.WithAssertionFailure(
			errors.Wrapf(equiv.ErrMalformedTable, "neighbors %d and %d have no table entry", a, b))
	}
	r.cells[i] = l
	_, err := r.t.Union(pa, pb)
	return err
}

// minPresent returns the smaller non-zero operand, or 0 if both are 0.
func minPresent(a, b grid.Label) grid.Label {
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	case a < b:
		return a
	default:
		return b
	}
}
