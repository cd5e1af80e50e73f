// Command lvlabel generates random binary grids, labels their 4-connected
// components and checks the result.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlabel/internal/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool
	profile    string

	cfg     *config.Config
	logger  *zap.Logger
	stopper interface{ Stop() }
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "lvlabel [command] (flags)",
		Short: "two-pass connected-component labeling of binary grids",
		Long: `lvlabel labels every 4-connected region of foreground cells in a grid.

The run command draws random grids, labels them with a forward and a
backward raster scan plus an equivalence table, and self-checks the result.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.profile, "profile", "", "write a cpu or mem profile to the working directory")

	root.AddCommand(newRunCmd(a), newVersionCmd())
	return root
}

// setup loads the config, builds the logger and starts profiling.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	if flags.Changed("profile") {
		cfg.Profile = a.profile
	}
	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	if cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	a.logger = logger

	switch cfg.Profile {
	case "cpu":
		a.stopper = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	case "mem":
		a.stopper = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	}
	return nil
}

func (a *app) teardown(*cobra.Command, []string) {
	if a.stopper != nil {
		a.stopper.Stop()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the lvlabel version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvlabel %s\n", version)
		},
	}
}

func main() {
	cobra.EnableCommandSorting = false
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
