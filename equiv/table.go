// SPDX-License-Identifier: MIT
// Package: lvlabel/equiv
//
// table.go — the Table type and its single-slot operations.

package equiv

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlabel/grid"
)

// Label is a provisional or canonical component label. 0 means "absent".
type Label = grid.Label

// SlotKind tags the state of one table slot.
type SlotKind uint8

const (
	// Unallocated slots were never handed out by Allocate.
	Unallocated SlotKind = iota
	// Root slots point to themselves; their label is canonical.
	Root
	// PointsTo slots point to a strictly smaller label in the same class.
	PointsTo
)

// String implements fmt.Stringer.
func (k SlotKind) String() string {
	switch k {
	case Root:
		return "root"
	case PointsTo:
		return "points-to"
	default:
		return "unallocated"
	}
}

// Stats counts table activity for one labeling run.
type Stats struct {
	Allocated int // labels handed out
	Merges    int // unions that joined two distinct classes
	MaxChase  int // longest chain walked by Root
}

// Option configures a Table.
type Option func(*Table)

// WithLogger routes out-of-range diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("equiv: WithLogger(nil)")
	}
	return func(t *Table) {
		t.log = l
	}
}

// WithPathCompression makes Root repoint every slot it walks directly at
// the root. Roots themselves never change, so smallest-label-wins holds.
func WithPathCompression(on bool) Option {
	return func(t *Table) {
		t.compress = on
	}
}

// Table is an equivalence table over labels 1..Cap().
// It is owned by a single labeling run and is not safe for concurrent use.
type Table struct {
	parent   []Label // parent[0] unused; 0 encodes Unallocated
	next     Label   // label the next Allocate must receive
	compress bool
	log      *zap.Logger
	stats    Stats
}

// New returns an empty table able to hold labels 1..capacity.
// Returns ErrInvalidCapacity if capacity is negative or would reach
// grid.Unlabeled.
// Complexity: O(capacity) time and memory.
func New(capacity int, opts ...Option) (*Table, error) {
	if capacity < 0 || uint64(capacity) >= math.MaxUint32 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity=%d", capacity)
	}
	t := &Table{
		parent: make([]Label, capacity+1),
		next:   1,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Cap returns the largest label the table can hold.
func (t *Table) Cap() int { return len(t.parent) - 1 }

// Len returns the number of allocated labels.
func (t *Table) Len() int { return int(t.next) - 1 }

// Stats returns counters accumulated so far.
func (t *Table) Stats() Stats { return t.stats }

// inRange reports whether l is a valid slot index (1..Cap()).
func (t *Table) inRange(l Label) bool {
	return l != 0 && uint64(l) < uint64(len(t.parent))
}

// Allocate roots label l at itself. l must be the next label in sequence.
// Returns ErrInvalidIndex for 0, ErrCapacityExceeded past Cap() and
// ErrOutOfOrder otherwise; the table is unchanged on error.
func (t *Table) Allocate(l Label) error {
	switch {
	case l == 0:
		t.log.Warn("equiv: allocate of reserved label", zap.Uint32("label", uint32(l)))
		return errors.Wrap(ErrInvalidIndex, "allocate 0")
	case !t.inRange(l):
		t.log.Warn("equiv: allocate beyond capacity",
			zap.Uint32("label", uint32(l)), zap.Int("cap", t.Cap()))
		return errors.Wrapf(ErrCapacityExceeded, "label %d, capacity %d", l, t.Cap())
	case l != t.next:
		return errors.Wrapf(ErrOutOfOrder, "label %d, expected %d", l, t.next)
	}
	t.parent[l] = l
	t.next++
	t.stats.Allocated++
	return nil
}

// NewLabel allocates and returns the next label in sequence.
func (t *Table) NewLabel() (Label, error) {
	l := t.next
	if err := t.Allocate(l); err != nil {
		return 0, err
	}
	return l, nil
}

// Set records p as the parent of l. Label 0 is reserved and silently
// ignored. p must be an allocated label no larger than l.
func (t *Table) Set(l, p Label) error {
	if l == 0 {
		return nil
	}
	if !t.inRange(l) || t.parent[l] == 0 {
		t.log.Warn("equiv: set on invalid slot",
			zap.Uint32("label", uint32(l)), zap.Uint32("parent", uint32(p)), zap.Int("cap", t.Cap()))
		return errors.Wrapf(ErrInvalidIndex, "set %d -> %d", l, p)
	}
	if !t.inRange(p) || t.parent[p] == 0 || p > l {
		t.log.Warn("equiv: set with invalid parent",
			zap.Uint32("label", uint32(l)), zap.Uint32("parent", uint32(p)))
		return errors.Wrapf(ErrInvalidParent, "set %d -> %d", l, p)
	}
	t.parent[l] = p
	return nil
}

// Find returns the stored parent of l without chasing further.
// It returns 0 ("no data") for 0, for unallocated slots and for labels
// beyond Cap(); the last case is logged.
func (t *Table) Find(l Label) Label {
	if l == 0 {
		return 0
	}
	if !t.inRange(l) {
		t.log.Warn("equiv: find beyond capacity",
			zap.Uint32("label", uint32(l)), zap.Int("cap", t.Cap()))
		return 0
	}
	return t.parent[l]
}

// Slot reports the state of slot l together with its stored parent.
func (t *Table) Slot(l Label) (SlotKind, Label) {
	p := t.Find(l)
	switch {
	case p == 0:
		return Unallocated, 0
	case p == l:
		return Root, p
	default:
		return PointsTo, p
	}
}

// String renders allocated slots as "1->1 2->1 3->3".
func (t *Table) String() string {
	var sb strings.Builder
	for i := 1; i <= t.Len(); i++ {
		if i > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d->%d", i, t.parent[i])
	}
	return sb.String()
}
