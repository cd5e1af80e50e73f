package grid

import "github.com/cockroachdb/errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfRange indicates an interior coordinate outside rows×cols.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrNilGrid indicates a nil *Grid.
	ErrNilGrid = errors.New("grid: grid is nil")
	// ErrBadCell indicates an unrecognized character in Parse input.
	ErrBadCell = errors.New("grid: unrecognized cell character")
)
