// Package grid holds the binary input grid and, after labeling, the label
// grid produced by package labeling.
//
// What:
//
//   - Grid stores rows×cols interior cells inside a one-cell OUTSIDE ring,
//     so every interior cell has four readable neighbors without bounds checks.
//   - Background and OUTSIDE cells hold 0. Foreground cells hold either the
//     Unlabeled marker (before labeling) or a positive Label.
//   - TargetCount remembers how many foreground cells the grid had when it
//     was built; labeling must preserve that count.
//
// Coordinates:
//
//   - All public methods take 0-based interior coordinates (r, c).
//   - At returns Background for coordinates on or beyond the ring.
//
// Complexity:
//
//   - New, FromRows, Parse, Clone, Values: O(rows×cols) time and memory.
//   - At, Set, Foreground: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfRange: Set outside the interior.
//   - ErrNilGrid: a nil *Grid was passed where one is required.
package grid
