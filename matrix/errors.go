// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms return these sentinels (possibly wrapped with %w) and tests
// check them via errors.Is. No exported function panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the detection site with
// fmt.Errorf("Type.Method(...): %w", ErrX).
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> NaN/Inf -> structural (CSR layout) -> stochastic checks.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrMatrixNotImplemented marks an intentionally unsupported operation,
	// e.g. inserting a new structural entry into a CSR via Set.
	ErrMatrixNotImplemented = errors.New("matrix: operation not implemented")

	// ErrMalformedCSR reports inconsistent CSR arrays: wrong indptr length,
	// non-monotone row pointers, duplicate or out-of-range column indices.
	ErrMalformedCSR = errors.New("matrix: malformed CSR structure")

	// ErrNegativeEntry reports an entry < 0 where a non-negative matrix is required.
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrNotStochastic reports a row whose sum differs from 1 beyond tolerance.
	ErrNotStochastic = errors.New("matrix: row does not sum to 1")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
