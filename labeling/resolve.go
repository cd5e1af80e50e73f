package labeling

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlabel/equiv"
	"github.com/katalvlaran/lvlabel/grid"
)

// resolve rewrites every foreground cell to the root of its class. It must
// run after both scans have finished populating the table.
func (r *run) resolve() error {
	rows, cols := r.g.Rows(), r.g.Cols()
	for row := 0; row < rows; row++ {
		i := r.g.Index(row, 0)
		for c := 0; c < cols; c, i = c+1, i+1 {
			if r.cells[i] == grid.Background {
				continue
			}
			root, err := r.t.Root(r.cells[i])
			if err != nil {
				return errors.Wrapf(err, "resolve at (%d,%d)", row, c)
			}
			r.cells[i] = root
		}
	}
	return nil
}

// compress renumbers the table's roots to 1..k in increasing order and
// rewrites the grid. Every foreground cell must already hold a root.
// It returns k.
func (r *run) compress() (int, error) {
	roots := r.t.Roots()
	dense := make([]grid.Label, r.t.Len()+1)
	for j, root := range roots {
		dense[root] = grid.Label(j + 1)
	}

	rows, cols := r.g.Rows(), r.g.Cols()
	for row := 0; row < rows; row++ {
		i := r.g.Index(row, 0)
		for c := 0; c < cols; c, i = c+1, i+1 {
			v := r.cells[i]
			if v == grid.Background {
				continue
			}
			if int(v) >= len(dense) || dense[v] == 0 {
				return 0, errors.WithAssertionFailure(
					errors.Wrapf(equiv.ErrMalformedTable, "compress at (%d,%d): label %d is not a root", row, c, v))
			}
			r.cells[i] = dense[v]
		}
	}
	return len(roots), nil
}
