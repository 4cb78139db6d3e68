package boardgraph

import (
	"math/rand"
)

// Option customizes Graph construction by mutating a config before the
// pipeline starts. Option constructors validate and panic on meaningless
// input; the pipeline itself never panics.
type Option func(*config)

// config aggregates all construction knobs.
type config struct {
	// Normalized weight used when the entropy range is degenerate (max == min).
	fallback float64
	// Goroutines used by the distance phase; 1 means sequential.
	workers int
	// Default source for Relabel; nil means a time-seeded source per call.
	rng *rand.Rand
	// Receives pipeline traces and invariant failures.
	logger Logger
}

// Deterministic defaults.
const (
	defaultFallback = 1.0 // degenerate range: every edge counts as "expected"
	defaultWorkers  = 1
)

// newConfig applies options in order over the defaults; last wins.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		fallback: defaultFallback,
		workers:  defaultWorkers,
		rng:      nil,
		logger:   klogLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDegenerateFallback sets the normalized entropy assigned to every edge
// when all distinct triples share one entropy value (including a single
// distinct triple). Panics unless 0 ≤ v ≤ 1.
func WithDegenerateFallback(v float64) Option {
	if !(v >= 0 && v <= 1) {
		panic("boardgraph: WithDegenerateFallback(v outside [0,1])")
	}
	return func(c *config) {
		c.fallback = v
	}
}

// WithWorkers bounds the goroutines used to compute distances.
// Results are identical to the sequential run. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("boardgraph: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithRand sets the default random source used by Relabel.
// A *rand.Rand is not goroutine-safe; do not share it across goroutines.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("boardgraph: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a deterministic default source for Relabel.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes pipeline traces to l instead of klog. Panics on nil.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("boardgraph: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
