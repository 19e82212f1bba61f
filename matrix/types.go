// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface shared by Dense and CSR.
package matrix

// Matrix represents a two-dimensional array of float64 values.
//
// Complexity notes: Rows/Cols are O(1). At/Set are O(1) for Dense and
// O(nnz(row)) for CSR. Clone is O(storage).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the shape.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid. Sparse implementations
	// may refuse structural insertions with ErrMatrixNotImplemented.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix = (*Dense)(nil)
	_ Matrix = (*CSR)(nil)
)
