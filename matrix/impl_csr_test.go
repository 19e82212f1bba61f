package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chiron3/QuantEcon.py/matrix"
)

// newSampleCSR builds
//
//	[0   0.5 0.5]
//	[1   0   0  ]
//
// with row 0 columns stored out of order (2 before 1).
func newSampleCSR(t *testing.T) *matrix.CSR {
	t.Helper()
	m, err := matrix.NewCSR(2, 3, []int{0, 2, 3}, []int{2, 1, 0}, []float64{0.5, 0.5, 1})
	require.NoError(t, err)
	return m
}

// TestNewCSR_Valid checks shape, counts and unsorted storage order.
func TestNewCSR_Valid(t *testing.T) {
	m := newSampleCSR(t)

	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 3, m.NNZ())

	nnz, err := m.RowNNZ(0)
	require.NoError(t, err)
	require.Equal(t, 2, nnz)

	cols, vals, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1}, cols)
	require.Equal(t, []float64{0.5, 0.5}, vals)

	require.Equal(t, []int{0, 2, 3}, m.Indptr())
	require.Equal(t, []int{2, 1, 0}, m.Indices())
	require.Equal(t, []float64{0.5, 0.5, 1}, m.Data())
}

// TestNewCSR_Malformed covers every structural rejection.
func TestNewCSR_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		indptr  []int
		indices []int
		data    []float64
		want    error
	}{
		{"zero rows", 0, 3, []int{0}, nil, nil, matrix.ErrInvalidDimensions},
		{"short indptr", 2, 3, []int{0, 1}, []int{0}, []float64{1}, matrix.ErrMalformedCSR},
		{"nonzero origin", 1, 3, []int{1, 1}, []int{0}, []float64{1}, matrix.ErrMalformedCSR},
		{"nnz mismatch", 1, 3, []int{0, 2}, []int{0}, []float64{1}, matrix.ErrMalformedCSR},
		{"decreasing", 2, 3, []int{0, 2, 1}, []int{0}, []float64{1}, matrix.ErrMalformedCSR},
		{"col out of range", 1, 3, []int{0, 1}, []int{3}, []float64{1}, matrix.ErrMalformedCSR},
		{"duplicate col", 1, 3, []int{0, 2}, []int{1, 1}, []float64{0.5, 0.5}, matrix.ErrMalformedCSR},
		{"nan value", 1, 3, []int{0, 1}, []int{1}, []float64{math.NaN()}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewCSR(tc.rows, tc.cols, tc.indptr, tc.indices, tc.data)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestCSR_AtSet reads stored and implicit zeros and refuses structural inserts.
func TestCSR_AtSet(t *testing.T) {
	m := newSampleCSR(t)

	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 0.5, v)

	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, m.Set(0, 1, 0.25))
	v, _ = m.At(0, 1)
	require.Equal(t, 0.25, v)

	require.ErrorIs(t, m.Set(1, 1, 0.3), matrix.ErrMatrixNotImplemented)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 5, 1), matrix.ErrOutOfRange)
}

// TestCSR_ToDense densifies and compares against the expected dense layout.
func TestCSR_ToDense(t *testing.T) {
	d, err := newSampleCSR(t).ToDense()
	require.NoError(t, err)
	require.Equal(t, "[0, 0.5, 0.5]\n[1, 0, 0]\n", d.String())
}

// TestCSR_CloneIndependence mirrors the Dense clone contract.
func TestCSR_CloneIndependence(t *testing.T) {
	m := newSampleCSR(t)
	c := m.Clone()
	require.NoError(t, c.Set(1, 0, 0.75))

	v, _ := m.At(1, 0)
	require.Equal(t, 1.0, v)
}

// TestCSR_String lists stored entries in storage order.
func TestCSR_String(t *testing.T) {
	require.Equal(t, "  (0, 2)\t0.5\n  (0, 1)\t0.5\n  (1, 0)\t1\n", newSampleCSR(t).String())
}
