// SPDX-License-Identifier: MIT

// Package matrix: converters to and from gonum's mat package, for handing a
// generated transition matrix to analysis code built on gonum.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense (CSR operands are densified).
// Errors: ErrNilMatrix; wrapped At errors for foreign Matrix implementations.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new Dense.
// Errors: ErrInvalidDimensions for empty input, ErrNaNInf for non-finite values.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %dx%d: %w", r, c, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = d.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf("FromGonum", err)
			}
		}
	}

	return d, nil
}
