package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chiron3/QuantEcon.py/builder"
	"github.com/chiron3/QuantEcon.py/matrix"
)

// TestRandomProbVec checks shape, positivity and sums.
func TestRandomProbVec(t *testing.T) {
	t.Parallel()

	vecs, err := builder.RandomProbVec(4, 3, builder.WithSeed(10))
	require.NoError(t, err)
	require.Len(t, vecs, 3)
	for _, v := range vecs {
		require.Len(t, v, 4)
		var s float64
		for _, x := range v {
			require.Greater(t, x, 0.0)
			s += x
		}
		require.InDelta(t, 1.0, s, rowSumTol)
	}
}

// TestRandomProbVec_MatchesRectPlan shares the unrestricted draw order.
func TestRandomProbVec_MatchesRectPlan(t *testing.T) {
	t.Parallel()

	vecs, err := builder.RandomProbVec(5, 2, builder.WithSeed(21))
	require.NoError(t, err)

	plan, err := builder.NewRectPlan(2, 5, builder.WithSeed(21))
	require.NoError(t, err)
	m, err := plan.Build()
	require.NoError(t, err)

	want, err := matrix.NewDenseFromRows(vecs)
	require.NoError(t, err)
	eq, err := matrix.Equal(m, want)
	require.NoError(t, err)
	require.True(t, eq)
}

// TestRandomProbVec_Invalid rejects empty shapes.
func TestRandomProbVec_Invalid(t *testing.T) {
	t.Parallel()

	_, err := builder.RandomProbVec(0, 3)
	require.ErrorIs(t, err, builder.ErrInvalidArgument)
	_, err = builder.RandomProbVec(3, 0)
	require.ErrorIs(t, err, builder.ErrInvalidArgument)
}
