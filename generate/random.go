// SPDX-License-Identifier: MIT
// Package: lvlabel/generate
//
// random.go — the Random grid source.

package generate

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlabel/grid"
)

// Result is a generated grid together with the seed that produced it.
// Seed is meaningful only when the grid was not drawn from WithRand.
type Result struct {
	Grid *grid.Grid
	Seed int64
}

// Random returns a rows×cols grid with each interior cell foreground iff a
// uniform brightness draw in [0,256) is <= the threshold.
// Returns ErrBadShape for non-positive dimensions.
// Complexity: O(rows×cols) time and memory.
func Random(rows, cols int, opts ...Option) (Result, error) {
	if rows <= 0 || cols <= 0 {
		return Result{}, errors.Wrapf(ErrBadShape, "rows=%d cols=%d", rows, cols)
	}
	cfg := newConfig(opts)
	g, err := grid.New(rows, cols)
	if err != nil {
		return Result{}, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cfg.rng.Intn(MaxBrightness) <= cfg.threshold {
				// (r,c) is in bounds by construction.
				_ = g.SetForeground(r, c, true)
			}
		}
	}
	return Result{Grid: g, Seed: cfg.seed}, nil
}
