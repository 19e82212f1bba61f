// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil handles,
//     workers < 1). Values the caller may legitimately get wrong at runtime
//     (n, k) are validated by NewPlan and reported as ErrInvalidArgument.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   • WithK(k) restricts every row to exactly k stored entries.
//   • WithSparse/WithDense pick the output representation; the values are
//     identical either way for the same seed.

package builder

import (
	"log/slog"
	"math/rand/v2"

	metrics "github.com/rcrowley/go-metrics"

	"github.com/chiron3/QuantEcon.py/sample"
)

// BuilderOption customizes a build by mutating a builderConfig instance
// before any draw happens.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithK restricts each row to k non-zero entries at sampled columns.
// k is validated by NewPlan (0 < k ≤ cols), not here.
func WithK(k int) BuilderOption {
	return func(c *builderConfig) {
		c.k, c.hasK = k, true
	}
}

// WithSparse selects CSR output.
func WithSparse() BuilderOption {
	return func(c *builderConfig) { c.sparse = true }
}

// WithDense selects dense output (the default).
func WithDense() BuilderOption {
	return func(c *builderConfig) { c.sparse = false }
}

// WithSeed makes builds reproducible: each build draws from a fresh MT19937
// state seeded with seed. Overrides an earlier WithRand.
// Complexity: O(1).
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.seed, c.seeded = seed, true
		c.state = nil
	}
}

// WithRand draws from the caller's state; consecutive builds continue its
// stream. Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.state = r
		c.seeded = false
	}
}

// WithWeightFn overrides the per-entry weight generator. The function must
// return values > 0 that are finite; anything else fails the build with
// ErrInvalidWeight. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithWorkers sets how many goroutines normalize and scatter rows after the
// sequential draw. Output does not depend on w. Panics if w < 1.
func WithWorkers(w int) BuilderOption {
	if w < 1 {
		panic("builder: WithWorkers(w<1)")
	}
	return func(c *builderConfig) { c.workers = w }
}

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}

// WithMetrics records builder and sampler metrics into reg. Panics on nil.
func WithMetrics(reg metrics.Registry) BuilderOption {
	if reg == nil {
		panic("builder: WithMetrics(nil)")
	}
	return func(c *builderConfig) { c.registry = reg }
}

// WithSamplerPolicy overrides how the column sampler picks its strategy.
// Panics on nil.
func WithSamplerPolicy(p sample.Policy) BuilderOption {
	if p == nil {
		panic("builder: WithSamplerPolicy(nil)")
	}
	return func(c *builderConfig) { c.policy = p }
}
