// SPDX-License-Identifier: MIT
// Package: lvlabel/equiv
//
// Package equiv implements the equivalence table used by two-pass
// connected-component labeling: an array-backed union-find over provisional
// labels in which every class is represented by its smallest label.
//
// What:
//
//   - Table maps each allocated label to a parent label that is never larger
//     than itself. A label whose parent is itself is a root.
//   - Labels are allocated strictly in increasing order starting at 1; label
//     0 is reserved for background and never stored.
//   - Union always repoints the larger root to the smaller one, so the root
//     of a class is the smallest label ever merged into it.
//
// Termination:
//
//   - Parents strictly decrease along every chain, so Root needs at most
//     Cap() hops. Hitting that bound, an unallocated hop, or an increasing
//     hop means the table was corrupted and is reported as ErrMalformedTable.
//
// Complexity:
//
//   - Allocate, Set, Find: O(1).
//   - Root, Union: O(chain length) ≤ O(Cap()); amortized near O(1) with
//     WithPathCompression(true).
//   - Roots: O(Len()).
//
// Errors:
//
//   - ErrInvalidIndex: label 0 where a label is required, or beyond Cap().
//   - ErrCapacityExceeded: Allocate past Cap().
//   - ErrOutOfOrder: Allocate of a label other than the next one.
//   - ErrInvalidParent: Set with a parent that is 0, unallocated or larger.
//   - ErrMalformedTable: internal-consistency failure during a chase.
package equiv
