package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvlabel/grid"
)

// background is printed for Background and OUTSIDE cells.
const background = "  ..  "

// palette colors labels round-robin in a colored dump.
var palette = []lipgloss.Color{"1", "2", "3", "4", "5", "6", "9", "10", "11", "12", "13", "14"}

// DumpOption configures Dump.
type DumpOption func(*dumpConfig)

type dumpConfig struct {
	color    bool
	renderer *lipgloss.Renderer
}

// WithColor colors each label with a palette entry chosen by label value.
func WithColor(on bool) DumpOption {
	return func(c *dumpConfig) {
		c.color = on
	}
}

// WithRenderer sets the lipgloss renderer used for colored output. By
// default Dump binds a renderer to its destination writer, so the color
// profile follows w rather than os.Stdout. Panics on nil.
func WithRenderer(r *lipgloss.Renderer) DumpOption {
	if r == nil {
		panic("render: WithRenderer(nil)")
	}
	return func(c *dumpConfig) {
		c.renderer = r
	}
}

// Dump writes every row of g's bordered buffer, ring included. Each row is
// preceded by a newline, and the dump ends with a blank line. Background
// cells print as "  ..  ", labels as " %4d ". Unlabeled foreground prints
// as 1.
func Dump(w io.Writer, g *grid.Grid, opts ...DumpOption) error {
	if g == nil {
		return grid.ErrNilGrid
	}
	var cfg dumpConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.renderer == nil {
		cfg.renderer = lipgloss.NewRenderer(w)
	}
	styles := make([]lipgloss.Style, len(palette))
	for i, col := range palette {
		styles[i] = cfg.renderer.NewStyle().Foreground(col)
	}

	bw := bufio.NewWriter(w)
	for r := -1; r <= g.Rows(); r++ {
		bw.WriteByte('\n')
		for c := -1; c <= g.Cols(); c++ {
			v := g.At(r, c)
			if v == grid.Background {
				bw.WriteString(background)
				continue
			}
			if v == grid.Unlabeled {
				v = 1
			}
			cell := fmt.Sprintf(" %4d ", v)
			if cfg.color {
				cell = styles[int(v)%len(styles)].Render(cell)
			}
			bw.WriteString(cell)
		}
	}
	bw.WriteString("\n\n")
	return bw.Flush()
}
