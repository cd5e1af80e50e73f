// Package config loads run settings for the lvlabel command from YAML.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlabel/generate"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every setting of a labeling run. Zero Rows/Cols mean "ask
// on stdin".
type Config struct {
	Rows      int   `yaml:"rows"`
	Cols      int   `yaml:"cols"`
	Trials    int   `yaml:"trials"`
	Parallel  int   `yaml:"parallel"`
	Seed      int64 `yaml:"seed"` // 0: time-based
	Threshold int   `yaml:"threshold"`

	Labeling LabelingConfig `yaml:"labeling"`
	Output   OutputConfig   `yaml:"output"`

	Verbose bool   `yaml:"verbose"`
	Profile string `yaml:"profile"` // "", "cpu" or "mem"
}

// LabelingConfig mirrors the labeling package options.
type LabelingConfig struct {
	MaxLabels       int  `yaml:"max_labels"` // 0: size to the grid
	BackwardPass    bool `yaml:"backward_pass"`
	PathCompression bool `yaml:"path_compression"`
}

// OutputConfig selects what is printed after each trial.
type OutputConfig struct {
	Print   bool `yaml:"print"`
	Color   bool `yaml:"color"`
	Summary bool `yaml:"summary"`
	Sizes   bool `yaml:"sizes"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Trials:    1,
		Parallel:  1,
		Threshold: generate.DefaultThreshold,
		Labeling: LabelingConfig{
			BackwardPass: true,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges. Rows and Cols must be both set or both zero.
func (c *Config) Validate() error {
	switch {
	case c.Rows < 0 || c.Cols < 0:
		return errors.Wrapf(ErrInvalidConfig, "rows=%d cols=%d must not be negative", c.Rows, c.Cols)
	case (c.Rows == 0) != (c.Cols == 0):
		return errors.Wrapf(ErrInvalidConfig, "rows=%d cols=%d must be set together", c.Rows, c.Cols)
	case c.Trials < 1:
		return errors.Wrapf(ErrInvalidConfig, "trials=%d must be >= 1", c.Trials)
	case c.Parallel < 1:
		return errors.Wrapf(ErrInvalidConfig, "parallel=%d must be >= 1", c.Parallel)
	case c.Threshold < -1 || c.Threshold >= generate.MaxBrightness:
		return errors.Wrapf(ErrInvalidConfig, "threshold=%d not in [-1,%d]", c.Threshold, generate.MaxBrightness-1)
	case c.Labeling.MaxLabels < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_labels=%d must not be negative", c.Labeling.MaxLabels)
	case c.Profile != "" && c.Profile != "cpu" && c.Profile != "mem":
		return errors.Wrapf(ErrInvalidConfig, "profile=%q must be cpu or mem", c.Profile)
	}
	return nil
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write config %s", path)
	}
	return nil
}
