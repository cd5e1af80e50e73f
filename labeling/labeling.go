package labeling

import (
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlabel/equiv"
	"github.com/katalvlaran/lvlabel/grid"
)

// Labeler holds a labeling configuration. It keeps no per-grid state, so
// one Labeler may label many grids, including concurrently.
type Labeler struct {
	cfg config
}

// New returns a Labeler configured by opts.
func New(opts ...Option) *Labeler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Labeler{cfg: cfg}
}

// Label labels g in place with a Labeler built from opts.
func Label(g *grid.Grid, opts ...Option) (Result, error) {
	return New(opts...).Label(g)
}

// Label runs scan, resolve and compress on g. On success every foreground
// cell of g holds a label in 1..Result.Components. On error g is left in an
// intermediate state and must be discarded.
//
// Errors: grid.ErrNilGrid, equiv.ErrCapacityExceeded (the grid needs more
// labels than WithMaxLabels allows), equiv.ErrMalformedTable.
func (lb *Labeler) Label(g *grid.Grid) (Result, error) {
	var res Result
	if g == nil {
		return res, grid.ErrNilGrid
	}
	capacity := g.Size()
	if lb.cfg.maxLabels > 0 {
		capacity = lb.cfg.maxLabels
	}
	t, err := equiv.New(capacity,
		equiv.WithLogger(lb.cfg.log),
		equiv.WithPathCompression(lb.cfg.compress))
	if err != nil {
		return res, err
	}
	r := &run{
		g:      g,
		cells:  g.Cells(),
		stride: g.Stride(),
		t:      t,
	}
	log := lb.cfg.log.With(zap.Int("rows", g.Rows()), zap.Int("cols", g.Cols()))

	start := time.Now()
	if err := r.forward(); err != nil {
		return res, errors.Wrapf(err, "labeling %dx%d grid", g.Rows(), g.Cols())
	}
	if lb.cfg.backward {
		if err := r.backward(); err != nil {
			return res, errors.Wrapf(err, "labeling %dx%d grid", g.Rows(), g.Cols())
		}
	}
	res.Timings.Scan = time.Since(start)
	log.Debug("labeling: scan done",
		zap.Int("provisional", t.Len()),
		zap.Int("merges", t.Stats().Merges),
		zap.Duration("took", res.Timings.Scan))

	start = time.Now()
	if err := r.resolve(); err != nil {
		return res, errors.Wrapf(err, "labeling %dx%d grid", g.Rows(), g.Cols())
	}
	res.Timings.Resolve = time.Since(start)
	log.Debug("labeling: resolve done", zap.Duration("took", res.Timings.Resolve))

	start = time.Now()
	k, err := r.compress()
	if err != nil {
		return res, errors.Wrapf(err, "labeling %dx%d grid", g.Rows(), g.Cols())
	}
	res.Timings.Compress = time.Since(start)
	log.Debug("labeling: compress done",
		zap.Int("components", k),
		zap.Duration("took", res.Timings.Compress))

	st := t.Stats()
	res.Components = k
	res.Provisional = st.Allocated
	res.Merges = st.Merges
	res.MaxChase = st.MaxChase
	return res, nil
}

// run is the state of one labeling: the grid's bordered buffer and the
// table built for it.
type run struct {
	g      *grid.Grid
	cells  []grid.Label
	stride int
	t      *equiv.Table
}
