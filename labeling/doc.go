// Package labeling assigns a unique label to every 4-connected region of
// foreground cells in a grid.Grid, using two raster scans and an
// equiv.Table.
//
// Pipeline (each stage completes before the next starts):
//
//  1. Scan, forward: top-to-bottom, left-to-right. A foreground cell with no
//     labeled neighbor above or to the left gets a fresh label; otherwise it
//     takes the smaller neighbor label and the two neighbor classes merge.
//  2. Scan, backward: bottom-to-top, right-to-left over the neighbors below
//     and to the right. It never allocates and only re-applies the same
//     assign/merge step. WithBackwardPass(false) skips it; output is the same.
//  3. Resolve: every foreground cell is rewritten to the root of its class.
//  4. Compress: roots are renumbered 1..k in increasing order.
//
// The grid is mutated in place. Background and OUTSIDE cells stay 0.
//
// Complexity: O(rows×cols) scans plus table chases; memory O(rows×cols) for
// the table. Labeling one grid is single-threaded; independent grids may be
// labeled concurrently as long as each call owns its grid.
package labeling
