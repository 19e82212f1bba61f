// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    branch with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - ValidateStochastic runs O(r*c) on Dense and O(r + nnz) on CSR.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (including typed nil pointers).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *CSR:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateStochastic checks that m is row-stochastic: every entry is finite
// and >= 0 and every row sums to 1 within the configured epsilon.
//
// Fixed sequence: NotNil → per-row (NaN/Inf → negative → sum).
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrNegativeEntry, ErrNotStochastic
//     (wrapped with the offending row).
//
// Complexity: O(r*c) for Dense/generic, O(r + nnz) for CSR.
func ValidateStochastic(m Matrix, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	o := gatherOptions(opts...)

	var rowErr error
	sums := make([]float64, m.Rows())
	check := func(i, j int, v float64) bool {
		if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
			rowErr = fmt.Errorf("ValidateStochastic: entry (%d,%d): %w", i, j, ErrNaNInf)
			return false
		}
		if v < 0 {
			rowErr = fmt.Errorf("ValidateStochastic: entry (%d,%d)=%g: %w", i, j, v, ErrNegativeEntry)
			return false
		}
		sums[i] += v
		return true
	}

	if err := visitEntries(m, check); err != nil {
		return validatorErrorf("ValidateStochastic", err)
	}
	if rowErr != nil {
		return rowErr
	}
	for i, s := range sums {
		// A NaN sum fails the comparison as well.
		if !(math.Abs(s-1) <= o.eps) {
			return fmt.Errorf("ValidateStochastic: row %d sums to %.17g: %w", i, s, ErrNotStochastic)
		}
	}

	return nil
}
