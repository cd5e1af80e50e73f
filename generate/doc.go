// SPDX-License-Identifier: MIT
// Package: lvlabel/generate
//
// Package generate produces random binary grids as input for labeling.
//
// Model:
//
//   - Every interior cell independently draws a brightness in [0,256).
//   - The cell is foreground iff brightness <= threshold (default 128, so
//     slightly more than half of the cells are foreground).
//   - The OUTSIDE ring is always Background.
//
// Determinism:
//
//   - Cells are drawn row-major. With WithSeed (or WithRand over a seeded
//     source) the same options always yield the same grid.
//   - Without a seed option a time-based seed is used; Seed() on the
//     returned Source reports it so runs can be replayed.
package generate
