package validate

import "github.com/cockroachdb/errors"

var (
	// ErrNeighborMismatch indicates two 4-adjacent foreground cells with
	// different labels.
	ErrNeighborMismatch = errors.New("validate: adjacent foreground cells carry different labels")
	// ErrCountMismatch indicates the number of labeled cells differs from the
	// number of foreground cells in the input.
	ErrCountMismatch = errors.New("validate: foreground cell count changed")
	// ErrLabelGap indicates the labels present are not exactly 1..k.
	ErrLabelGap = errors.New("validate: labels are not dense")
	// ErrUnlabeled indicates a foreground cell that was never labeled.
	ErrUnlabeled = errors.New("validate: foreground cell left unlabeled")
	// ErrPartitionMismatch indicates two grids group cells differently.
	ErrPartitionMismatch = errors.New("validate: component partitions differ")
	// ErrShapeMismatch indicates two grids of different dimensions.
	ErrShapeMismatch = errors.New("validate: grid shapes differ")
)
