package grid

import "math"

// Label is the value stored in a cell: Background, Unlabeled, or a
// positive component label.
type Label uint32

const (
	// Background is the value of non-target cells and of the OUTSIDE ring.
	Background Label = 0
	// Unlabeled marks a foreground cell that has not been labeled yet.
	// It never collides with a real label because label capacity is bounded
	// by the number of interior cells.
	Unlabeled Label = math.MaxUint32
)

// IsLabel reports whether l is a real component label.
func (l Label) IsLabel() bool {
	return l != Background && l != Unlabeled
}

// Grid is a rows×cols binary image surrounded by a one-cell OUTSIDE ring.
// cells is row-major over the bordered (rows+2)×(cols+2) buffer.
// A Grid is owned by one labeling at a time; it is not safe for concurrent
// mutation.
type Grid struct {
	rows, cols int
	stride     int // cols + 2
	cells      []Label
	target     int // foreground count at construction
}
