// SPDX-License-Identifier: MIT
// Package: lvlabel/equiv
//
// errors.go — sentinel errors for the equiv package.
//
// Callers branch with errors.Is; context is attached with errors.Wrapf at
// the point of failure and never changes the sentinel identity.

package equiv

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidIndex indicates label 0 where a real label is required, or a
	// label beyond the table capacity.
	ErrInvalidIndex = errors.New("equiv: label index out of range")

	// ErrCapacityExceeded indicates more labels were requested than the table
	// was sized for. Surfaced to callers instead of truncating silently.
	ErrCapacityExceeded = errors.New("equiv: label capacity exceeded")

	// ErrOutOfOrder indicates Allocate was called with a label other than the
	// next one in sequence.
	ErrOutOfOrder = errors.New("equiv: labels must be allocated in increasing order")

	// ErrInvalidParent indicates Set would break the non-increasing chain
	// invariant (parent 0, unallocated, or larger than the label).
	ErrInvalidParent = errors.New("equiv: invalid parent label")

	// ErrInvalidCapacity indicates New was asked for a negative capacity or
	// one that collides with grid.Unlabeled.
	ErrInvalidCapacity = errors.New("equiv: invalid capacity")

	// ErrMalformedTable indicates a chase did not reach a fixed point. It is
	// always an internal-consistency fault, never a user input problem.
	ErrMalformedTable = errors.New("equiv: malformed equivalence table")
)
