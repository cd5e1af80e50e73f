package render

import (
	"fmt"
	"io"
	"strconv"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/lvlabel/grid"
)

// Region describes one labeled component: its size and bounding box in
// interior coordinates.
type Region struct {
	Label                    grid.Label
	Cells                    int
	Top, Left, Bottom, Right int
}

// Regions collects one Region per distinct label, ordered by label.
// Unlabeled foreground is ignored.
// Complexity: O(rows×cols + k log k).
func Regions(g *grid.Grid) []Region {
	labels := g.Distinct()
	pos := make(map[grid.Label]int, len(labels))
	out := make([]Region, len(labels))
	for i, l := range labels {
		pos[l] = i
		out[i] = Region{Label: l, Top: g.Rows(), Left: g.Cols(), Bottom: -1, Right: -1}
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			v := g.At(r, c)
			if !v.IsLabel() {
				continue
			}
			reg := &out[pos[v]]
			reg.Cells++
			reg.Top = min(reg.Top, r)
			reg.Left = min(reg.Left, c)
			reg.Bottom = max(reg.Bottom, r)
			reg.Right = max(reg.Right, c)
		}
	}
	return out
}

// Summary writes a table with one row per component.
func Summary(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return grid.ErrNilGrid
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Label", "Cells", "Top", "Left", "Bottom", "Right"})
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, reg := range Regions(g) {
		tbl.Append([]string{
			strconv.FormatUint(uint64(reg.Label), 10),
			strconv.Itoa(reg.Cells),
			strconv.Itoa(reg.Top),
			strconv.Itoa(reg.Left),
			strconv.Itoa(reg.Bottom),
			strconv.Itoa(reg.Right),
		})
	}
	tbl.Render()
	return nil
}

// SizeStats summarizes the distribution of component sizes.
type SizeStats struct {
	Components int
	Min, Max   int64
	P50, P90   int64
	P99        int64
	Mean       float64
}

// String renders the stats on one line.
func (s SizeStats) String() string {
	return fmt.Sprintf("components=%d min=%d p50=%d p90=%d p99=%d max=%d mean=%.2f",
		s.Components, s.Min, s.P50, s.P90, s.P99, s.Max, s.Mean)
}

// SizeQuantiles records every component size in an HDR histogram with three
// significant digits and reports its quantiles. A grid with no components
// yields zero stats.
func SizeQuantiles(g *grid.Grid) (SizeStats, error) {
	if g == nil {
		return SizeStats{}, grid.ErrNilGrid
	}
	regions := Regions(g)
	if len(regions) == 0 {
		return SizeStats{}, nil
	}
	h := hdrhistogram.New(1, int64(max(g.Size(), 2)), 3)
	for _, reg := range regions {
		if err := h.RecordValue(int64(reg.Cells)); err != nil {
			return SizeStats{}, errors.Wrapf(err, "recording size of label %d", reg.Label)
		}
	}
	return SizeStats{
		Components: len(regions),
		Min:        h.Min(),
		Max:        h.Max(),
		P50:        h.ValueAtQuantile(50),
		P90:        h.ValueAtQuantile(90),
		P99:        h.ValueAtQuantile(99),
		Mean:       h.Mean(),
	}, nil
}
