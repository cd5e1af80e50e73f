package grid

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Parse builds a grid from an ASCII picture, one line per row.
// '#', 'x', 'X' and '1' are foreground; '.' and '0' are background.
// Blank lines and surrounding whitespace are ignored.
//
//	#..
//	###
//
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadCell.
func Parse(s string) (*Grid, error) {
	var rows [][]int
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '#', 'x', 'X', '1':
				row = append(row, 1)
			case '.', '0':
				row = append(row, 0)
			default:
				return nil, errors.Wrapf(ErrBadCell, "row %d col %d: %q", len(rows), len(row), ch)
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// MustParse is like Parse but panics on error. Intended for tests and
// examples with literal pictures.
func MustParse(s string) *Grid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}
