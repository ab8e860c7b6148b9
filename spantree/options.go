// File: options.go
// Role: Functional options and deterministic defaults for SpanningTree.
package spantree

import (
	"math/rand"
	"time"
)

// config aggregates the knobs used by SpanningTree. It is passed by
// value; callers never observe it directly.
type config struct {
	// rng drives the edge shuffle; nil resolves to a time-seeded
	// generator in newConfig.
	rng *rand.Rand
}

// Option configures SpanningTree. Options are applied in order with
// last-wins semantics.
type Option func(*config)

// WithRand sets the random generator used to shuffle the candidate
// edge order. Passing nil is ignored and the default applies.
func WithRand(r *rand.Rand) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithSeed sets a deterministic random generator seeded with seed.
// Two calls with the same seed on the same source graph produce the
// same spanning tree.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// newConfig applies opts over defaults and resolves the RNG. The
// fallback generator is created here, at the call boundary, so no
// package-global random state exists.
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
