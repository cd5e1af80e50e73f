// SPDX-License-Identifier: MIT
// Package: lvlabel/equiv
//
// union.go — chain walking (Root), merging (Union) and root enumeration.

package equiv

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Root follows parents from l until it reaches a label that points to
// itself and returns that label. Every hop must strictly decrease; the walk
// is additionally bounded by Cap() hops. A violation of either rule is
// reported as ErrMalformedTable.
//
// With path compression enabled, every slot on the walked chain is
// repointed at the root before returning.
func (t *Table) Root(l Label) (Label, error) {
	if !t.inRange(l) {
		t.log.Warn("equiv: root of invalid label",
			zap.Uint32("label", uint32(l)), zap.Int("cap", t.Cap()))
		return 0, errors.Wrapf(ErrInvalidIndex, "root %d", l)
	}
	cursor := l
	hops := 0
	for {
		p := t.parent[cursor]
		if p == cursor {
			break
		}
		if p == 0 || p > cursor || hops >= t.Cap() {
			return 0, t.malformed(l, cursor, p, hops)
		}
		cursor = p
		hops++
	}
	if hops > t.stats.MaxChase {
		t.stats.MaxChase = hops
	}
	if t.compress && hops > 1 {
		for c := l; c != cursor; {
			next := t.parent[c]
			t.parent[c] = cursor
			c = next
		}
	}
	return cursor, nil
}

// malformed builds the assertion failure returned by Root.
func (t *Table) malformed(start, at, parent Label, hops int) error {
	t.log.Error("equiv: chase did not reach a fixed point",
		zap.Uint32("start", uint32(start)),
		zap.Uint32("at", uint32(at)),
		zap.Uint32("parent", uint32(parent)),
		zap.Int("hops", hops))
	return errors.WithAssertionFailure(
		errors.Wrapf(ErrMalformedTable, "chase from %d stuck at %d (parent %d) after %d hops",
			start, at, parent, hops))
}

// Union merges the classes of a and b. A zero operand means "no neighbor"
// and makes the call a no-op, as does a pair already in one class.
// Otherwise the larger of the two roots is repointed at the smaller.
// It reports whether two distinct classes were joined.
func (t *Table) Union(a, b Label) (bool, error) {
	if a == 0 || b == 0 || a == b {
		return false, nil
	}
	ra, err := t.Root(a)
	if err != nil {
		return false, err
	}
	rb, err := t.Root(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}
	hi, lo := ra, rb
	if hi < lo {
		hi, lo = lo, hi
	}
	t.parent[hi] = lo
	t.stats.Merges++
	return true, nil
}

// Roots returns every allocated root in increasing order. Allocation is
// contiguous, so the scan stops at the first unallocated slot.
func (t *Table) Roots() []Label {
	var out []Label
	for i := 1; i < len(t.parent); i++ {
		p := t.parent[i]
		if p == 0 {
			break
		}
		if p == Label(i) {
			out = append(out, p)
		}
	}
	return out
}
