package validate

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlabel/grid"
)

// neighbors are the 4-connected offsets: up, left, down, right.
var neighbors = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// Report is the outcome of Check.
type Report struct {
	// Foreground is the number of labeled cells found.
	Foreground int
	// Want is the expected foreground count.
	Want int
	// Components is the largest label seen.
	Components int
	// Offending is a label involved in the last neighbor mismatch, or 0.
	Offending grid.Label

	err error
}

// OK reports whether every check passed.
func (r Report) OK() bool { return r.err == nil }

// Err returns nil or the first failed check, matching one of
// ErrNeighborMismatch, ErrUnlabeled, ErrCountMismatch or ErrLabelGap.
func (r Report) Err() error { return r.err }

// String renders the console verdict: "success" or "error -> N".
func (r Report) String() string {
	if r.OK() {
		return "success"
	}
	return fmt.Sprintf("error -> %d", r.Offending)
}

// Check validates a labeled grid against the foreground count of its input.
//
//   - every foreground neighbor of a foreground cell carries the same label;
//   - the number of labeled cells equals want;
//   - the labels present are exactly 1..k.
//
// Like the console self-check, the neighbor scan keeps going after a
// mismatch and reports the last offending neighbor label.
func Check(g *grid.Grid, want int) Report {
	rep := Report{Want: want}
	if g == nil {
		rep.err = grid.ErrNilGrid
		return rep
	}
	seen := make(map[grid.Label]struct{})
	var mismatch, unlabeled error
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			v := g.At(r, c)
			if v == grid.Background {
				continue
			}
			rep.Foreground++
			if v == grid.Unlabeled {
				if unlabeled == nil {
					unlabeled = errors.Wrapf(ErrUnlabeled, "at (%d,%d)", r, c)
				}
				continue
			}
			seen[v] = struct{}{}
			if int(v) > rep.Components {
				rep.Components = int(v)
			}
			for _, d := range neighbors {
				n := g.At(r+d[0], c+d[1])
				if n != grid.Background && n != v {
					rep.Offending = n
					mismatch = errors.Wrapf(ErrNeighborMismatch,
						"(%d,%d)=%d next to (%d,%d)=%d", r, c, v, r+d[0], c+d[1], n)
				}
			}
		}
	}
	switch {
	case mismatch != nil:
		rep.err = mismatch
	case unlabeled != nil:
		rep.err = unlabeled
	case rep.Foreground != want:
		rep.err = errors.Wrapf(ErrCountMismatch, "got %d, want %d", rep.Foreground, want)
	case len(seen) != rep.Components:
		rep.err = errors.Wrapf(ErrLabelGap, "%d distinct labels, max %d", len(seen), rep.Components)
	}
	return rep
}
