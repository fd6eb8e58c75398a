package kdtree

import (
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"
)

type config struct {
	logger       hclog.Logger
	rng          *rand.Rand
	rebuildRatio float64
	dimensions   int
}

// Option configures a tree created by New or NewFunc.
type Option func(*config)

func defaultConfig() *config {
	return &config{
		logger:       hclog.NewNullLogger(),
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		rebuildRatio: DefaultRebuildRatio,
	}
}

// WithLogger sets the logger used for rebuild and resurrection events.
func WithLogger(logger hclog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRand sets the source used to shuffle items during a rebuild.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithRebuildRatio sets the tombstone to live item ratio that triggers a
// rebuild. Non-positive values are ignored.
func WithRebuildRatio(ratio float64) Option {
	return func(c *config) {
		if ratio > 0 {
			c.rebuildRatio = ratio
		}
	}
}

// WithDimensions fixes the number of dimensions every item must have.
// Without it the first inserted item decides.
func WithDimensions(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.dimensions = n
		}
	}
}
