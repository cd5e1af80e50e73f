// Package validate checks the output of package labeling.
//
// What:
//
//   - Check verifies neighbor consistency, count preservation and label
//     density in one raster pass, and reports the first offending label the
//     way the console self-check does ("success" / "error -> N").
//   - Components finds 4-connected components independently, by BFS, and
//     serves as an oracle for the labeling's partition.
//   - SamePartition compares the component membership of two grids while
//     ignoring the numeric label values.
//
// Complexity: every function is O(rows×cols) time and memory.
package validate
