// SPDX-License-Identifier: MIT

// Package matrix - CSR (compressed sparse row) storage.
//
// Purpose:
//   - Store only structural entries: row i owns indices[indptr[i]:indptr[i+1]]
//     and the matching data slice.
//   - Keep column indices in insertion order. Generators append columns in the
//     order they were drawn; nothing here re-sorts them.
//   - Offer the queries generated transition matrices need: elementwise At,
//     per-row counts and sums, and densification via ToDense.
//
// Complexity quicksheet:
//   - NewCSR: O(rows + nnz) validation; At/Set: O(nnz(row)); ToDense: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxNewCSR  = "NewCSR"
	ctxRow     = "Row"
	ctxRowNNZ  = "RowNNZ"
	_fmtCSRRow = "  (%d, %d)\t%g\n"
)

// csrErrorf wraps an error with CSR method context and coordinates.
func csrErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CSR.%s(%d,%d): %w", method, row, col, err)
}

// CSR is a compressed sparse row matrix of float64 values.
//   - indptr has length r+1, indptr[0] == 0, non-decreasing, indptr[r] == nnz.
//   - indices[k] is the column of data[k]; columns are unique within a row.
type CSR struct {
	r, c    int
	indptr  []int
	indices []int
	data    []float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*CSR)(nil)

// NewCSR validates the three CSR arrays and wraps them without copying;
// the caller hands over ownership.
//
// Implementation:
//   - Stage 1: validate shape (rows>0, cols>0).
//   - Stage 2: validate indptr length, origin, monotonicity and terminal nnz.
//   - Stage 3: validate column range and per-row uniqueness with a row stamp.
//   - Stage 4: reject NaN/±Inf values (default numeric policy).
//
// Errors:
//   - ErrInvalidDimensions, ErrMalformedCSR, ErrNaNInf.
//
// Complexity:
//   - Time O(rows + nnz), Space O(cols) for the uniqueness stamp.
func NewCSR(rows, cols int, indptr, indices []int, data []float64) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(indptr) != rows+1 || indptr[0] != 0 {
		return nil, fmt.Errorf("%s: indptr length %d (want %d) or origin != 0: %w",
			ctxNewCSR, len(indptr), rows+1, ErrMalformedCSR)
	}
	if len(indices) != len(data) || indptr[rows] != len(indices) {
		return nil, fmt.Errorf("%s: indptr[%d]=%d, len(indices)=%d, len(data)=%d: %w",
			ctxNewCSR, rows, indptr[rows], len(indices), len(data), ErrMalformedCSR)
	}

	var i, p, j int
	for i = 0; i < rows; i++ {
		if indptr[i+1] < indptr[i] {
			return nil, fmt.Errorf("%s: indptr decreases at row %d: %w", ctxNewCSR, i, ErrMalformedCSR)
		}
	}

	// stamp[j] == i+1 marks column j as seen in row i.
	stamp := make([]int, cols)
	for i = 0; i < rows; i++ {
		for p = indptr[i]; p < indptr[i+1]; p++ {
			j = indices[p]
			if j < 0 || j >= cols {
				return nil, csrErrorf(ctxNewCSR, i, j, ErrMalformedCSR)
			}
			if stamp[j] == i+1 {
				return nil, fmt.Errorf("%s: duplicate column %d in row %d: %w", ctxNewCSR, j, i, ErrMalformedCSR)
			}
			stamp[j] = i + 1
			if DefaultValidateNaNInf && (math.IsNaN(data[p]) || math.IsInf(data[p], 0)) {
				return nil, csrErrorf(ctxNewCSR, i, j, ErrNaNInf)
			}
		}
	}

	return &CSR{r: rows, c: cols, indptr: indptr, indices: indices, data: data}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *CSR) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *CSR) Cols() int { return m.c }

// Shape packs Rows() and Cols(). Complexity: O(1).
func (m *CSR) Shape() (rows, cols int) { return m.r, m.c }

// NNZ returns the number of stored entries. Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.data) }

// RowNNZ returns the number of stored entries in row i.
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *CSR) RowNNZ(i int) (int, error) {
	if i < 0 || i >= m.r {
		return 0, csrErrorf(ctxRowNNZ, i, 0, ErrOutOfRange)
	}

	return m.indptr[i+1] - m.indptr[i], nil
}

// find returns the storage offset of (i,j) or -1 when the entry is not stored.
// Callers have validated the coordinates.
func (m *CSR) find(i, j int) int {
	for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
		if m.indices[p] == j {
			return p
		}
	}

	return -1
}

// At returns the value at (i,j); entries that are not stored read as 0.
// Errors: ErrOutOfRange. Complexity: O(nnz(row i)).
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, csrErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	if p := m.find(i, j); p >= 0 {
		return m.data[p], nil
	}

	return 0, nil
}

// Set overwrites a stored entry. Inserting a new structural entry is not
// supported and returns ErrMatrixNotImplemented; rebuild the CSR instead.
// Errors: ErrOutOfRange, ErrNaNInf, ErrMatrixNotImplemented.
// Complexity: O(nnz(row i)).
func (m *CSR) Set(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return csrErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if DefaultValidateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return csrErrorf(ctxSet, i, j, ErrNaNInf)
	}
	p := m.find(i, j)
	if p < 0 {
		return csrErrorf(ctxSet, i, j, ErrMatrixNotImplemented)
	}
	m.data[p] = v

	return nil
}

// Row returns copies of the column indices and values stored in row i, in
// storage order.
// Errors: ErrOutOfRange. Complexity: O(nnz(row i)).
func (m *CSR) Row(i int) ([]int, []float64, error) {
	if i < 0 || i >= m.r {
		return nil, nil, csrErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	cols := append([]int(nil), m.indices[lo:hi]...)
	vals := append([]float64(nil), m.data[lo:hi]...)

	return cols, vals, nil
}

// Indptr returns a copy of the row pointer array (length Rows()+1).
func (m *CSR) Indptr() []int { return append([]int(nil), m.indptr...) }

// Indices returns a copy of the column index array.
func (m *CSR) Indices() []int { return append([]int(nil), m.indices...) }

// Data returns a copy of the value array.
func (m *CSR) Data() []float64 { return append([]float64(nil), m.data...) }

// Clone returns a deep copy. The returned dynamic type is *CSR.
// Complexity: O(rows + nnz).
func (m *CSR) Clone() Matrix {
	return &CSR{
		r:       m.r,
		c:       m.c,
		indptr:  m.Indptr(),
		indices: m.Indices(),
		data:    m.Data(),
	}
}

// ToDense densifies m into a new r×c Dense; unstored entries are 0.
// Complexity: O(r*c) time and space.
func (m *CSR) ToDense() (*Dense, error) {
	d, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, err
	}
	var i, p int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for p = m.indptr[i]; p < m.indptr[i+1]; p++ {
			d.data[base+m.indices[p]] = m.data[p]
		}
	}

	return d, nil
}

// Do visits stored entries row by row in storage order; stops when f returns false.
// Complexity: O(nnz).
func (m *CSR) Do(f func(i, j int, v float64) bool) {
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			if !f(i, m.indices[p], m.data[p]) {
				return
			}
		}
	}
}

// String lists stored entries as "(row, col)\tvalue" lines in storage order.
func (m *CSR) String() string {
	var b strings.Builder
	m.Do(func(i, j int, v float64) bool {
		fmt.Fprintf(&b, _fmtCSRRow, i, j, v)
		return true
	})

	return b.String()
}
