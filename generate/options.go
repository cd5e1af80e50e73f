// SPDX-License-Identifier: MIT
// Package: lvlabel/generate
//
// options.go — functional options for Random.
//
// Option constructors validate and panic on meaningless inputs; Random
// itself never panics.

package generate

import (
	"math/rand"
	"time"
)

const (
	// DefaultThreshold is the brightness cut-off: cells at or below it are
	// foreground.
	DefaultThreshold = 128
	// MaxBrightness is the exclusive upper bound of a brightness draw.
	MaxBrightness = 256
)

// Option customizes Random.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	seed      int64
	seeded    bool
	threshold int
}

func newConfig(opts []Option) config {
	cfg := config{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		if !cfg.seeded {
			cfg.seed = time.Now().UnixNano()
		}
		cfg.rng = rand.New(rand.NewSource(cfg.seed))
	}
	return cfg
}

// WithSeed draws from a new source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed, c.seeded = seed, true
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws from r. The caller owns the seed policy. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithThreshold sets the brightness cut-off. -1 yields an all-background
// grid, 255 an all-foreground one. Panics outside [-1, 255].
func WithThreshold(th int) Option {
	if th < -1 || th >= MaxBrightness {
		panic("generate: WithThreshold out of [-1,255]")
	}
	return func(c *config) {
		c.threshold = th
	}
}
