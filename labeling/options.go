package labeling

import "go.uber.org/zap"

// Option configures a Labeler.
type Option func(*config)

type config struct {
	log       *zap.Logger
	maxLabels int // 0: size the table to the grid
	backward  bool
	compress  bool
}

func defaultConfig() config {
	return config{
		log:      zap.NewNop(),
		backward: true,
	}
}

// WithLogger sets the logger for phase diagnostics and table warnings.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("labeling: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}

// WithMaxLabels caps the number of provisional labels. A grid that needs
// more fails with equiv.ErrCapacityExceeded. Panics if n <= 0.
func WithMaxLabels(n int) Option {
	if n <= 0 {
		panic("labeling: WithMaxLabels(n<=0)")
	}
	return func(c *config) {
		c.maxLabels = n
	}
}

// WithBackwardPass enables or disables the reverse raster scan.
// It is enabled by default.
func WithBackwardPass(on bool) Option {
	return func(c *config) {
		c.backward = on
	}
}

// WithPathCompression enables path compression in the equivalence table.
func WithPathCompression(on bool) Option {
	return func(c *config) {
		c.compress = on
	}
}
