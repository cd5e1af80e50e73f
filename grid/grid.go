package grid

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// New returns a rows×cols grid whose interior is all Background.
// Returns ErrEmptyGrid if rows or cols is not positive.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrEmptyGrid, "rows=%d cols=%d", rows, cols)
	}
	stride := cols + 2
	return &Grid{
		rows:   rows,
		cols:   cols,
		stride: stride,
		cells:  make([]Label, (rows+2)*stride),
	}, nil
}

// FromRows builds a grid from a non-empty rectangular 2D slice.
// Any value > 0 becomes an Unlabeled foreground cell; everything else is
// Background. The input is not retained.
// Returns ErrEmptyGrid or ErrNonRectangular.
func FromRows(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(h, w)
	if err != nil {
		return nil, err
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if values[r][c] > 0 {
				g.cells[g.index(r, c)] = Unlabeled
				g.target++
			}
		}
	}
	return g, nil
}

// Rows returns the number of interior rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of interior columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols, the number of interior cells.
func (g *Grid) Size() int { return g.rows * g.cols }

// TargetCount returns the number of foreground cells the grid held when it
// was constructed (or when SetForeground/Binarize last changed it).
func (g *Grid) TargetCount() int { return g.target }

// InBounds reports whether (r,c) lies within the interior.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the value at interior coordinate (r,c). The ring and anything
// beyond it read as Background.
func (g *Grid) At(r, c int) Label {
	if r < -1 || r > g.rows || c < -1 || c > g.cols {
		return Background
	}
	return g.cells[g.index(r, c)]
}

// Foreground reports whether (r,c) is a target cell, labeled or not.
func (g *Grid) Foreground(r, c int) bool {
	return g.At(r, c) != Background
}

// Set stores v at interior coordinate (r,c). It does not change
// TargetCount; use SetForeground when building input.
func (g *Grid) Set(r, c int, v Label) error {
	if !g.InBounds(r, c) {
		return errors.Wrapf(ErrOutOfRange, "(%d,%d) in %dx%d", r, c, g.rows, g.cols)
	}
	g.cells[g.index(r, c)] = v
	return nil
}

// SetForeground marks (r,c) as target (Unlabeled) or Background and keeps
// TargetCount in step.
func (g *Grid) SetForeground(r, c int, on bool) error {
	if !g.InBounds(r, c) {
		return errors.Wrapf(ErrOutOfRange, "(%d,%d) in %dx%d", r, c, g.rows, g.cols)
	}
	i := g.index(r, c)
	was := g.cells[i] != Background
	switch {
	case on && !was:
		g.cells[i] = Unlabeled
		g.target++
	case !on && was:
		g.cells[i] = Background
		g.target--
	}
	return nil
}

// ForegroundCount counts the interior cells that are not Background.
// Complexity: O(rows×cols).
func (g *Grid) ForegroundCount() int {
	n := 0
	for r := 0; r < g.rows; r++ {
		row := g.cells[g.index(r, 0) : g.index(r, 0)+g.cols]
		for _, v := range row {
			if v != Background {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([]Label, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, stride: g.stride, cells: cells, target: g.target}
}

// Binarize turns every labeled cell back into Unlabeled foreground and
// resets TargetCount, so an already-labeled grid can be fed through the
// pipeline again.
func (g *Grid) Binarize() {
	g.target = 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			i := g.index(r, c)
			if g.cells[i] != Background {
				g.cells[i] = Unlabeled
				g.target++
			}
		}
	}
}

// Values returns a snapshot of the interior as plain integers. Unlabeled
// cells are reported as 1, matching the binary input convention.
func (g *Grid) Values() [][]uint32 {
	out := make([][]uint32, g.rows)
	for r := range out {
		out[r] = make([]uint32, g.cols)
		for c := range out[r] {
			v := g.cells[g.index(r, c)]
			if v == Unlabeled {
				v = 1
			}
			out[r][c] = uint32(v)
		}
	}
	return out
}

// Distinct returns the distinct real labels present, in increasing order.
func (g *Grid) Distinct() []Label {
	seen := make(map[Label]struct{})
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if v := g.cells[g.index(r, c)]; v.IsLabel() {
				seen[v] = struct{}{}
			}
		}
	}
	out := make([]Label, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Index maps interior (r,c) to its offset in the bordered buffer.
// Ring cells (r or c equal to -1, rows or cols) are addressable.
func (g *Grid) Index(r, c int) int { return g.index(r, c) }

// Stride returns the row length of the bordered buffer (cols+2).
func (g *Grid) Stride() int { return g.stride }

// Cells exposes the bordered buffer. Callers that write through it are
// responsible for leaving the ring at Background.
func (g *Grid) Cells() []Label { return g.cells }

// index maps (r,c) to (r+1)*stride + (c+1).
// Complexity: O(1).
func (g *Grid) index(r, c int) int {
	return (r+1)*g.stride + c + 1
}
