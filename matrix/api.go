// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation; no logic duplication.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// CloneMatrix returns a structural clone of m (same dynamic type).
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// RowSums returns vector r where r[i] = Σ_j m[i,j].
// Complexity: O(r*c) for Dense, O(nnz) for CSR.
//
// AI-Hints: Used by Markov/stochastic normalization checks.
func RowSums(m Matrix) ([]float64, error) { return rowSums(m) }

// RowNonZeros returns, per row, the number of entries strictly greater than 0.
// Complexity: O(r*c) for Dense, O(nnz) for CSR.
func RowNonZeros(m Matrix) ([]int, error) { return rowNonZeros(m) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Mixed Dense/CSR operands are allowed.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Equal reports exact element-wise equality for identical shapes.
// Mixed Dense/CSR operands are allowed; a CSR compares by its densified form.
func Equal(a, b Matrix) (bool, error) { return ewEqual(a, b) }
