package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlabel/generate"
	"github.com/katalvlaran/lvlabel/grid"
	"github.com/katalvlaran/lvlabel/internal/config"
	"github.com/katalvlaran/lvlabel/labeling"
	"github.com/katalvlaran/lvlabel/render"
	"github.com/katalvlaran/lvlabel/validate"
)

// errTrialsFailed is returned when at least one trial fails its self-check.
var errTrialsFailed = errors.New("lvlabel: self-check failed")

// runFlags are the run command's flags; each overrides the config file
// only when set on the command line.
type runFlags struct {
	trials, parallel int
	seed             int64
	threshold        int
	maxLabels        int
	noBackward       bool
	compress         bool
	print, color     bool
	summary, sizes   bool
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run [ROWS COLS]",
		Short: "label random grids and self-check the result",
		Long: `Draws random ROWS×COLS grids, labels them and prints "success" or
"error -> N" for each trial. Without ROWS COLS (and without rows/cols in the
config file) the dimensions are read from stdin as "<height> <width>".`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			f.apply(cmd, cfg)
			if err := dims(cmd.InOrStdin(), args, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			rn := &runner{cfg: cfg, log: a.logger, out: cmd.OutOrStdout()}
			return rn.run(cmd.Context())
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&f.trials, "trials", "n", 1, "number of independent trials")
	fl.IntVarP(&f.parallel, "parallel", "p", 1, "trials run concurrently")
	fl.Int64Var(&f.seed, "seed", 0, "seed of the first trial (0: time-based)")
	fl.IntVar(&f.threshold, "threshold", generate.DefaultThreshold, "brightness cut-off in [-1,255]; lower is sparser")
	fl.IntVar(&f.maxLabels, "max-labels", 0, "provisional label limit (0: size to the grid)")
	fl.BoolVar(&f.noBackward, "no-backward", false, "skip the backward raster pass")
	fl.BoolVar(&f.compress, "path-compression", false, "compress equivalence chains")
	fl.BoolVar(&f.print, "print", false, "dump each labeled grid")
	fl.BoolVar(&f.color, "color", false, "color labels in the dump")
	fl.BoolVar(&f.summary, "summary", false, "print a per-component table")
	fl.BoolVar(&f.sizes, "sizes", false, "print component size quantiles")
	return cmd
}

// apply copies the flags that were set onto cfg.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	set := func(name string, fn func()) {
		if fl.Changed(name) {
			fn()
		}
	}
	set("trials", func() { cfg.Trials = f.trials })
	set("parallel", func() { cfg.Parallel = f.parallel })
	set("seed", func() { cfg.Seed = f.seed })
	set("threshold", func() { cfg.Threshold = f.threshold })
	set("max-labels", func() { cfg.Labeling.MaxLabels = f.maxLabels })
	set("no-backward", func() { cfg.Labeling.BackwardPass = !f.noBackward })
	set("path-compression", func() { cfg.Labeling.PathCompression = f.compress })
	set("print", func() { cfg.Output.Print = f.print })
	set("color", func() { cfg.Output.Color = f.color })
	set("summary", func() { cfg.Output.Summary = f.summary })
	set("sizes", func() { cfg.Output.Sizes = f.sizes })
}

// dims fills cfg.Rows and cfg.Cols from args, or from in when neither the
// args nor the config provide them.
func dims(in io.Reader, args []string, cfg *config.Config) error {
	switch len(args) {
	case 2:
		rows, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrapf(err, "invalid ROWS %q", args[0])
		}
		cols, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(err, "invalid COLS %q", args[1])
		}
		cfg.Rows, cfg.Cols = rows, cols
	case 1:
		return errors.New("run: ROWS and COLS must be given together")
	default:
		if cfg.Rows != 0 && cfg.Cols != 0 {
			return nil
		}
		if _, err := fmt.Fscan(in, &cfg.Rows, &cfg.Cols); err != nil {
			return errors.Wrap(err, "reading \"<height> <width>\" from stdin")
		}
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return errors.Wrapf(config.ErrInvalidConfig, "rows=%d cols=%d must be > 0", cfg.Rows, cfg.Cols)
	}
	return nil
}

// trial is the outcome of one generate-label-check cycle.
type trial struct {
	seed   int64
	grid   *grid.Grid
	result labeling.Result
	report validate.Report
	err    error
}

// runner executes the configured trials.
type runner struct {
	cfg *config.Config
	log *zap.Logger
	out io.Writer
}

// run executes cfg.Trials trials, at most cfg.Parallel at a time. Each trial
// owns its grid and equivalence table. Output is written in trial order
// after all trials finish.
func (rn *runner) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	base := rn.cfg.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}
	lb := labeling.New(rn.labelingOptions()...)

	trials := make([]trial, rn.cfg.Trials)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rn.cfg.Parallel)
	for i := range trials {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			trials[i] = rn.trial(lb, base+int64(i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i := range trials {
		if err := rn.report(&trials[i]); err != nil {
			return err
		}
		if trials[i].err != nil || !trials[i].report.OK() {
			failed++
		}
	}
	if failed > 0 {
		return errors.Wrapf(errTrialsFailed, "%d of %d trials", failed, len(trials))
	}
	return nil
}

func (rn *runner) labelingOptions() []labeling.Option {
	opts := []labeling.Option{
		labeling.WithLogger(rn.log),
		labeling.WithBackwardPass(rn.cfg.Labeling.BackwardPass),
		labeling.WithPathCompression(rn.cfg.Labeling.PathCompression),
	}
	if rn.cfg.Labeling.MaxLabels > 0 {
		opts = append(opts, labeling.WithMaxLabels(rn.cfg.Labeling.MaxLabels))
	}
	return opts
}

// trial generates, labels and checks one grid.
func (rn *runner) trial(lb *labeling.Labeler, seed int64) trial {
	tr := trial{seed: seed}
	gen, err := generate.Random(rn.cfg.Rows, rn.cfg.Cols,
		generate.WithSeed(seed), generate.WithThreshold(rn.cfg.Threshold))
	if err != nil {
		tr.err = err
		return tr
	}
	tr.grid = gen.Grid
	want := tr.grid.TargetCount()
	tr.result, tr.err = lb.Label(tr.grid)
	if tr.err != nil {
		rn.log.Error("labeling failed", zap.Int64("seed", seed), zap.Error(tr.err))
		return tr
	}
	tr.report = validate.Check(tr.grid, want)
	rn.log.Debug("trial done",
		zap.Int64("seed", seed),
		zap.Int("components", tr.result.Components),
		zap.Int("provisional", tr.result.Provisional),
		zap.Duration("took", tr.result.Timings.Total()),
		zap.Bool("ok", tr.report.OK()))
	return tr
}

// report prints one trial in the console format.
func (rn *runner) report(tr *trial) error {
	w := rn.out
	fmt.Fprintf(w, "seed: %d\n", tr.seed)
	if tr.err != nil {
		fmt.Fprintf(w, "error: %v\n", tr.err)
		return nil
	}
	out := rn.cfg.Output
	if out.Print {
		if err := render.Dump(w, tr.grid,
			render.WithColor(out.Color), render.WithRenderer(lipgloss.NewRenderer(w))); err != nil {
			return err
		}
	}
	if out.Summary {
		if err := render.Summary(w, tr.grid); err != nil {
			return err
		}
	}
	if out.Sizes {
		st, err := render.SizeQuantiles(tr.grid)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, st)
	}
	fmt.Fprintln(w, tr.report)
	return nil
}
