// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • k          = unset             (every row has all columns)
//   • sparse     = false             (dense output)
//   • state      = none              (fresh unpredictable state per build)
//   • weightFn   = ExponentialWeightFn(1)
//   • workers    = DefaultWorkers
//   • logger     = discarding slog logger
//   • registry   = nil               (no metrics)
//
// AI-Hints:
//   • WithSeed makes every Build of a plan start from the same state, so
//     repeated builds are identical. WithRand shares the caller's state, so
//     consecutive builds continue its stream.

package builder

import (
	"io"
	"log/slog"
	"math/rand/v2"

	metrics "github.com/rcrowley/go-metrics"

	"github.com/chiron3/QuantEcon.py/rng"
	"github.com/chiron3/QuantEcon.py/sample"
)

// builderConfig aggregates all knobs used by the builders.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// Non-zeros per row; meaningful only when hasK.
	k    int
	hasK bool
	// Output representation.
	sparse bool

	// Random state: an explicit shared state wins over a seed.
	state  *rand.Rand
	seed   uint64
	seeded bool

	weightFn WeightFn
	workers  int

	logger   *slog.Logger
	registry metrics.Registry
	policy   sample.Policy // nil → sample package default
}

// discardLogger drops every record.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newBuilderConfig constructs a config with defaults and applies all options
// in order (last-wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		workers:  DefaultWorkers,
		logger:   discardLogger,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// random returns the state a single build draws from.
func (c builderConfig) random() *rand.Rand {
	switch {
	case c.state != nil:
		return c.state
	case c.seeded:
		return rng.New(c.seed)
	default:
		return rng.Fresh()
	}
}

// width is the number of stored entries per row for a matrix with cols columns.
func (c builderConfig) width(cols int) int {
	if c.hasK {
		return c.k
	}

	return cols
}

// sampleOptions forwards sampler policy and metrics to the sample package.
func (c builderConfig) sampleOptions() []sample.Option {
	var opts []sample.Option
	if c.policy != nil {
		opts = append(opts, sample.WithPolicy(c.policy))
	}
	if c.registry != nil {
		opts = append(opts, sample.WithMetrics(c.registry))
	}

	return opts
}
