package sample_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chiron3/QuantEcon.py/rng"
	"github.com/chiron3/QuantEcon.py/sample"
)

// TestRatioPolicy_Selection checks the crossover boundary.
func TestRatioPolicy_Selection(t *testing.T) {
	p := sample.RatioPolicy(sample.DefaultCrossover)
	require.Equal(t, sample.Rejection, p(100, 25))
	require.Equal(t, sample.Permutation, p(100, 26))
	require.Equal(t, sample.Permutation, p(4, 4))

	require.Equal(t, sample.Permutation, sample.RatioPolicy(0)(100, 1))
	require.Equal(t, sample.Rejection, sample.RatioPolicy(1)(100, 100))
}

// TestRatioPolicy_PanicsOutOfRange enforces option validation.
func TestRatioPolicy_PanicsOutOfRange(t *testing.T) {
	require.Panics(t, func() { sample.RatioPolicy(-0.1) })
	require.Panics(t, func() { sample.RatioPolicy(1.5) })
}

// TestStrategies_DistinctAndInRange runs both strategies across ratios.
func TestStrategies_DistinctAndInRange(t *testing.T) {
	for _, s := range []sample.Strategy{sample.Rejection, sample.Permutation} {
		t.Run(s.Name(), func(t *testing.T) {
			r := rng.New(11)
			for _, k := range []int{1, 5, 30, 31} {
				got, err := sample.ChoiceTrials(31, k, 20, r, sample.WithStrategy(s))
				require.NoError(t, err)
				for _, row := range got {
					require.Len(t, row, k)
					requireDistinctInRange(t, row, 31)
				}
			}
		})
	}
}

// TestStrategies_Uniform is a frequency smoke test: every index of [0,n)
// should be picked close to m*k/n times.
func TestStrategies_Uniform(t *testing.T) {
	const n, k, m = 10, 3, 20000
	expected := float64(m*k) / n

	for _, s := range []sample.Strategy{sample.Rejection, sample.Permutation} {
		t.Run(s.Name(), func(t *testing.T) {
			got, err := sample.ChoiceTrials(n, k, m, rng.New(2024), sample.WithStrategy(s))
			require.NoError(t, err)

			counts := make([]int, n)
			for _, row := range got {
				for _, v := range row {
					counts[v]++
				}
			}
			for i, c := range counts {
				require.InDelta(t, expected, float64(c), 0.05*expected, "index %d", i)
			}
		})
	}
}

// TestStrategies_FirstPositionUniform checks order randomization: the first
// element of each trial must also be uniform.
func TestStrategies_FirstPositionUniform(t *testing.T) {
	const n, k, m = 8, 2, 16000
	expected := float64(m) / n

	for _, s := range []sample.Strategy{sample.Rejection, sample.Permutation} {
		t.Run(s.Name(), func(t *testing.T) {
			got, err := sample.ChoiceTrials(n, k, m, rng.New(77), sample.WithStrategy(s))
			require.NoError(t, err)

			counts := make([]int, n)
			for _, row := range got {
				counts[row[0]]++
			}
			for i, c := range counts {
				require.InDelta(t, expected, float64(c), 0.1*expected, "index %d", i)
			}
		})
	}
}

// TestWithOptions_PanicOnNil keeps option constructors fail-fast.
func TestWithOptions_PanicOnNil(t *testing.T) {
	require.Panics(t, func() { sample.WithPolicy(nil) })
	require.Panics(t, func() { sample.WithStrategy(nil) })
	require.Panics(t, func() { sample.WithMetrics(nil) })
}
