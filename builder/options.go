// File: options.go
// Role: Functional options and deterministic defaults for stochastic
// constructors (RandomSparse).
package builder

import (
	"math/rand"
	"time"
)

// config holds the knobs shared by stochastic constructors.
type config struct {
	// rng drives random edge selection; nil resolves to a
	// time-seeded generator in newConfig.
	rng *rand.Rand
}

// Option configures a stochastic constructor. Options apply in order
// with last-wins semantics.
type Option func(*config)

// WithRand sets the random generator. Passing nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithSeed sets a deterministic generator seeded with seed, for
// reproducible fixtures and golden tests.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// newConfig applies opts over defaults and resolves the RNG at the
// call boundary; no package-global random state.
// Complexity: O(len(opts))
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
