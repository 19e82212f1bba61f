// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row statistics used to inspect generated transition matrices:
//     RowSums (Σ_j m[i,j]) and RowNonZeros (#{j : m[i,j] > 0}).
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense and CSR fast-paths read storage directly; other Matrix
//     implementations go through At.

package matrix

// Operation name constants for unified error wrapping.
const (
	opRowSums     = "RowSums"
	opRowNonZeros = "RowNonZeros"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return validatorErrorf(tag, err)
}

// visitEntries calls f for every entry that can be non-zero: all cells of a
// Dense or generic Matrix, stored entries of a CSR. Stops when f returns false.
func visitEntries(m Matrix, f func(i, j int, v float64) bool) error {
	switch v := m.(type) {
	case *Dense:
		v.Do(f)
		return nil
	case *CSR:
		v.Do(f)
		return nil
	}

	r, c := m.Rows(), m.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x, err := m.At(i, j)
			if err != nil {
				return err
			}
			if !f(i, j, x) {
				return nil
			}
		}
	}

	return nil
}

// rowSums accumulates per-row sums in column (or storage) order.
// Complexity: O(r*c) dense, O(nnz) CSR.
func rowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	sums := make([]float64, m.Rows())
	err := visitEntries(m, func(i, _ int, v float64) bool {
		sums[i] += v
		return true
	})
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return sums, nil
}

// rowNonZeros counts strictly positive entries per row.
// For a CSR this counts stored entries whose value is > 0, which equals
// RowNNZ when every stored value is positive.
func rowNonZeros(m Matrix) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowNonZeros, err)
	}
	counts := make([]int, m.Rows())
	err := visitEntries(m, func(i, _ int, v float64) bool {
		if v > 0 {
			counts[i]++
		}
		return true
	})
	if err != nil {
		return nil, matrixErrorf(opRowNonZeros, err)
	}

	return counts, nil
}
