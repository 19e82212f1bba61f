// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_assembler.go - turn a generated arena into a Dense or CSR matrix.
//
// Contract:
//   - Each assembler consumes every row exactly once and normalizes it with
//     normalizeRow, so rows are bit-identical across representations.
//   - Normalization and scatter are pure per-row work; they are split into
//     contiguous row blocks and run on an errgroup limited to cfg.workers.
//   - The output does not depend on the worker count.

package builder

import (
	"golang.org/x/sync/errgroup"

	"github.com/chiron3/QuantEcon.py/matrix"
)

// assembler builds the output representation from a generated arena.
type assembler interface {
	assemble(rows, cols int, a *rowArena, workers int) (matrix.Matrix, error)
}

// denseAssembler scatters normalized weights into a zero rows×cols buffer.
type denseAssembler struct{}

// csrAssembler stores normalized weights in generator order; since every
// row holds exactly width entries, indptr[i] = i*width.
type csrAssembler struct{}

// assemblerFor picks the assembler for the requested representation.
func assemblerFor(sparse bool) assembler {
	if sparse {
		return csrAssembler{}
	}

	return denseAssembler{}
}

// forEachRowBlock runs fn over [lo, hi) row blocks on at most workers
// goroutines. With one worker it runs inline.
func forEachRowBlock(rows, workers int, fn func(lo, hi int)) error {
	if workers <= 1 || rows <= 1 {
		fn(0, rows)
		return nil
	}
	if workers > rows {
		workers = rows
	}
	block := (rows + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < rows; lo += block {
		hi := min(lo+block, rows)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}

	return g.Wait()
}

func (denseAssembler) assemble(rows, cols int, a *rowArena, workers int) (matrix.Matrix, error) {
	data := make([]float64, rows*cols)
	err := forEachRowBlock(rows, workers, func(lo, hi int) {
		norm := make([]float64, a.width)
		for i := lo; i < hi; i++ {
			row := a.rows[i]
			normalizeRow(row.weights, norm)
			base := i * cols
			for p, j := range row.cols {
				data[base+j] = norm[p]
			}
		}
	})
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFromData(rows, cols, data)
}

func (csrAssembler) assemble(rows, cols int, a *rowArena, workers int) (matrix.Matrix, error) {
	indptr := make([]int, rows+1)
	for i := range indptr {
		indptr[i] = i * a.width
	}
	data := make([]float64, len(a.weights))
	err := forEachRowBlock(rows, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			normalizeRow(a.rows[i].weights, data[i*a.width:(i+1)*a.width])
		}
	})
	if err != nil {
		return nil, err
	}

	// The arena's column buffer is already row-contiguous in draw order.
	return matrix.NewCSR(rows, cols, indptr, a.cols, data)
}
