package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	require.True(t, cfg.Labeling.BackwardPass)
	require.Equal(t, 128, cfg.Threshold)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rows: 20
cols: 30
trials: 4
seed: 7
labeling:
  path_compression: true
output:
  summary: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 20, cfg.Rows)
	require.Equal(t, 30, cfg.Cols)
	require.Equal(t, 4, cfg.Trials)
	require.Equal(t, 1, cfg.Parallel)
	require.Equal(t, int64(7), cfg.Seed)
	require.True(t, cfg.Labeling.PathCompression)
	require.True(t, cfg.Labeling.BackwardPass)
	require.True(t, cfg.Output.Summary)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rows: [1"), 0o644))
	_, err := Load(bad)
	require.Error(t, err)

	half := filepath.Join(dir, "half.yaml")
	require.NoError(t, os.WriteFile(half, []byte("rows: 3\n"), 0o644))
	_, err = Load(half)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	for name, mut := range map[string]func(*Config){
		"negative rows": func(c *Config) { c.Rows, c.Cols = -1, 2 },
		"trials":        func(c *Config) { c.Trials = 0 },
		"parallel":      func(c *Config) { c.Parallel = 0 },
		"threshold":     func(c *Config) { c.Threshold = 300 },
		"max labels":    func(c *Config) { c.Labeling.MaxLabels = -5 },
		"profile":       func(c *Config) { c.Profile = "block" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mut(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
	require.NoError(t, Default().Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.Rows, cfg.Cols = 5, 6
	cfg.Output.Color = true
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}
