// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison kernels shared by AllClose and Equal.
//
// Both kernels accept any Matrix pair with identical shapes. CSR operands are
// densified once so comparisons run over flat buffers.

package matrix

import "math"

// asDense returns m as a *Dense, densifying CSR operands and copying other
// implementations through At.
func asDense(m Matrix) (*Dense, error) {
	switch v := m.(type) {
	case *Dense:
		return v, nil
	case *CSR:
		return v.ToDense()
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			x, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			d.data[i*d.c+j] = x
		}
	}

	return d, nil
}

// prepareCompare validates presence and shape, then returns flat buffers.
func prepareCompare(tag string, a, b Matrix) ([]float64, []float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return da.data, db.data, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Deterministic.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	xa, xb, err := prepareCompare("AllClose", a, b)
	if err != nil {
		return false, err
	}
	for idx := range xa {
		// Check |a-b| ≤ atol + rtol*|b|; early-exit on first violation.
		if math.Abs(xa[idx]-xb[idx]) > atol+rtol*math.Abs(xb[idx]) {
			return false, nil
		}
	}

	return true, nil
}

// ewEqual reports exact element-wise equality (bitwise up to ±0).
func ewEqual(a, b Matrix) (bool, error) {
	xa, xb, err := prepareCompare("Equal", a, b)
	if err != nil {
		return false, err
	}
	for idx := range xa {
		if xa[idx] != xb[idx] {
			return false, nil
		}
	}

	return true, nil
}
