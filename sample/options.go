// SPDX-License-Identifier: MIT

package sample

import (
	metrics "github.com/rcrowley/go-metrics"
)

// Metric names recorded when a registry is attached with WithMetrics.
const (
	MetricTrials      = "sample.trials"
	MetricRedraws     = "sample.redraws"
	MetricRejection   = metricStrategyPrefix + "rejection"
	MetricPermutation = metricStrategyPrefix + "permutation"

	metricStrategyPrefix = "sample.strategy."
)

// Option customizes a Choice or ChoiceTrials call.
type Option func(*config)

// config is resolved per call and passed by value.
type config struct {
	policy   Policy
	registry metrics.Registry
}

func newConfig(opts ...Option) config {
	cfg := config{policy: RatioPolicy(DefaultCrossover)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithPolicy replaces the strategy selection policy. Panics on nil.
func WithPolicy(p Policy) Option {
	if p == nil {
		panic("sample: WithPolicy(nil)")
	}

	return func(c *config) { c.policy = p }
}

// WithStrategy forces s for every (n, k). Panics on nil.
func WithStrategy(s Strategy) Option {
	if s == nil {
		panic("sample: WithStrategy(nil)")
	}

	return WithPolicy(func(int, int) Strategy { return s })
}

// WithMetrics records trial, redraw and strategy counters into reg.
// Panics on nil; omit the option to disable recording.
func WithMetrics(reg metrics.Registry) Option {
	if reg == nil {
		panic("sample: WithMetrics(nil)")
	}

	return func(c *config) { c.registry = reg }
}

// record updates counters for one trial when a registry is attached.
func (c config) record(s Strategy, redraws int) {
	if c.registry == nil {
		return
	}
	metrics.GetOrRegisterCounter(MetricTrials, c.registry).Inc(1)
	if redraws > 0 {
		metrics.GetOrRegisterCounter(MetricRedraws, c.registry).Inc(int64(redraws))
	}
	metrics.GetOrRegisterCounter(metricStrategyPrefix+s.Name(), c.registry).Inc(1)
}
