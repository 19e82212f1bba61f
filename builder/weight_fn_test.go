// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chiron3/QuantEcon.py/builder"
	"github.com/chiron3/QuantEcon.py/rng"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_zero", func() builder.WeightFn { return builder.ConstantWeightFn(0) }},
		{"ConstantWeightFn_inf", func() builder.WeightFn { return builder.ConstantWeightFn(math.Inf(1)) }},
		{"UniformWeightFn_minZero", func() builder.WeightFn { return builder.UniformWeightFn(0, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
		{"ExponentialWeightFn_nanRate", func() builder.WeightFn { return builder.ExponentialWeightFn(math.NaN()) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn:
//   - DefaultWeightFn and ExponentialWeightFn are strictly positive.
//   - UniformWeightFn stays in [min,max).
//   - ConstantWeightFn consumes no draws.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	r := rng.New(42)
	exp := builder.ExponentialWeightFn(2)
	uni := builder.UniformWeightFn(1, 100)
	for i := 0; i < 1000; i++ {
		require.Greater(t, builder.DefaultWeightFn(r), 0.0)
		require.Greater(t, exp(r), 0.0)
		w := uni(r)
		require.GreaterOrEqual(t, w, 1.0)
		require.Less(t, w, 100.0)
	}

	a, b := rng.New(7), rng.New(7)
	require.Equal(t, 3.5, builder.ConstantWeightFn(3.5)(a))
	require.Equal(t, b.Uint64(), a.Uint64())
	require.Equal(t, 2.0, builder.UniformWeightFn(2, 2)(a))
}

// TestExponentialMean is a coarse sanity check on the rate parameter.
func TestExponentialMean(t *testing.T) {
	t.Parallel()

	const draws = 20000
	r := rng.New(3)
	fn := builder.ExponentialWeightFn(4)
	var sum float64
	for i := 0; i < draws; i++ {
		sum += fn(r)
	}
	require.InDelta(t, 0.25, sum/draws, 0.01)
}
