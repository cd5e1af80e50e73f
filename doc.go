// Package lvlabel labels the 4-connected regions of a binary grid with a
// two-pass raster scan and an equivalence table.
//
// 🚀 What is lvlabel?
//
//	A small, dependency-light toolkit that brings together:
//		• Grids: a bordered label buffer with an OUTSIDE ring
//		• Equivalence table: provisional labels, root chase, smallest-wins union
//		• Labeling: forward + backward scan, conflict resolution, compression
//		• Generation: seeded random grids with a brightness threshold
//		• Validation: a neighbor/count/gap self-check and a BFS oracle
//		• Rendering: bordered dumps, per-component tables, size quantiles
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/      — Label, Grid, the bordered buffer and a small text parser
//	equiv/     — the equivalence table over provisional labels
//	labeling/  — the scanner, resolver and compressor pipeline
//	generate/  — random grid source
//	validate/  — Check, Components, MatchesOracle, SamePartition
//	render/    — Dump, Summary, SizeQuantiles
//	cmd/lvlabel — the command-line driver (run, version)
//
// Quick ASCII example:
//
//	x.x..x        1 . 1 . . 2
//	x.x..x   →    1 . 1 . . 2
//	xxx...        1 1 1 . . .
//
// the U shape gets one label even though the forward scan sees two arms.
//
//	go get github.com/katalvlaran/lvlabel/labeling
package lvlabel
