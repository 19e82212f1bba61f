// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_rows.go - sequential row generation into a single arena.
//
// Contract:
//   - Rows are produced 0..rows-1 against one random state, strictly in order.
//   - Per row: columns first (sampler, only when k is given), then weights.
//   - Unrestricted rows use columns 0..cols-1 and consume no column draws.
//   - Every weight is validated here, so assembly never sees a bad value.
//
// Determinism:
//   - Both assemblers read the same arena, which is what makes dense and CSR
//     output identical for the same seed.

package builder

import (
	"math/rand/v2"

	"github.com/chiron3/QuantEcon.py/sample"
)

// rowSpec is one generated row: column indices (in draw order) and the
// unnormalized weights at those columns. Both slices view the arena.
type rowSpec struct {
	cols    []int
	weights []float64
}

// rowArena owns the contiguous backing storage of all rows of one build.
// Row i occupies [i*width, (i+1)*width) in both buffers.
type rowArena struct {
	width   int
	cols    []int
	weights []float64
	rows    []rowSpec
}

// rowGenerator draws the rows of one build.
type rowGenerator struct {
	rows, cols int
	cfg        builderConfig
}

// generate draws every row sequentially from r.
//
// Implementation:
//   - Stage 1: allocate the arena (rows*width ints and floats).
//   - Stage 2: per row, fill columns (sample.Choice or identity), then weights.
//
// Errors:
//   - ErrInvalidArgument from the sampler (unreachable after NewPlan).
//   - ErrInvalidWeight when the WeightFn returns a value ≤ 0, NaN or ±Inf.
//
// Complexity:
//   - Time O(rows*width) plus sampler cost; Space O(rows*width).
func (g rowGenerator) generate(method string, r *rand.Rand) (*rowArena, error) {
	width := g.cfg.width(g.cols)
	a := &rowArena{
		width:   width,
		cols:    make([]int, g.rows*width),
		weights: make([]float64, g.rows*width),
		rows:    make([]rowSpec, g.rows),
	}
	sampleOpts := g.cfg.sampleOptions()

	var i, p, lo, hi int
	for i = 0; i < g.rows; i++ {
		lo, hi = i*width, (i+1)*width
		row := rowSpec{cols: a.cols[lo:hi:hi], weights: a.weights[lo:hi:hi]}

		if g.cfg.hasK {
			drawn, err := sample.Choice(g.cols, width, r, sampleOpts...)
			if err != nil {
				return nil, builderErrorf(method, err, "row %d", i)
			}
			copy(row.cols, drawn)
		} else {
			for p = range row.cols {
				row.cols[p] = p
			}
		}

		for p = range row.weights {
			w := g.cfg.weightFn(r)
			if !validWeight(w) {
				return nil, builderErrorf(method, ErrInvalidWeight, "row %d col %d: w=%g", i, row.cols[p], w)
			}
			row.weights[p] = w
		}
		a.rows[i] = row
	}

	return a, nil
}

// normalizeRow writes w[p]/Σw into dst, summing in generator order.
// Weights are positive and finite, so the sum is positive.
func normalizeRow(weights, dst []float64) {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	for p, w := range weights {
		dst[p] = w / sum
	}
}
