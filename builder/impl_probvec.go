// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_probvec.go - RandomProbVec(k, m): m probability vectors of length k.
//
// With the default weights each vector is uniform on the (k-1)-simplex.
// Draw order matches an unrestricted m×k plan, so RandomProbVec and
// NewRectPlan(m, k) with the same seed produce the same rows.

package builder

import (
	"log/slog"
)

// RandomProbVec returns m probability vectors of length k. Only the
// weight and random-state options apply; WithK and WithSparse are ignored.
// Errors: ErrInvalidArgument (k < 1 or m < 1), ErrInvalidWeight.
// Complexity: O(m*k).
func RandomProbVec(k, m int, opts ...BuilderOption) ([][]float64, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateShape(MethodRandomProbVec, m, k); err != nil {
		cfg.logger.Debug("probvec rejected", slog.Any("error", err))
		return nil, err
	}
	cfg.hasK, cfg.sparse = false, false

	arena, err := rowGenerator{rows: m, cols: k, cfg: cfg}.generate(MethodRandomProbVec, cfg.random())
	if err != nil {
		return nil, err
	}
	out := make([][]float64, m)
	for i, row := range arena.rows {
		// Reuse the arena: normalize each row in place.
		normalizeRow(row.weights, row.weights)
		out[i] = row.weights
	}

	return out, nil
}
