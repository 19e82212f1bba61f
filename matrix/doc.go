// Package matrix provides the numeric containers that hold generated
// transition matrices.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with O(1) bounds-checked access.
//   - CSR: a compressed sparse row matrix (row pointer, column index and
//     value arrays) storing only the structural non-zeros of each row.
//   - Validators for shape and row-stochastic structure (ValidateStochastic).
//   - Row statistics (RowSums, RowNonZeros) and comparisons (AllClose, Equal)
//     that work on either representation.
//   - Converters to and from gonum's mat.Dense for downstream analysis.
//
// Both containers implement Matrix, so callers that only query entries do
// not care which representation a generator returned. CSR.ToDense
// densifies a sparse matrix; the result compares Equal to a Dense built
// from the same rows.
//
// Errors are package-level sentinels ("matrix: ...") wrapped with method
// context; branch with errors.Is.
package matrix
