// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Every facade resolves options into a Plan (eager validation) and builds once.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same n, options and seed ⇒ identical matrices, dense or CSR.
//   - Safety: never panic at runtime; return sentinel errors.
//
// AI-Hints (practical):
//   - Keep a Plan when the same shape is built repeatedly (fixtures, benchmarks).
//   - Use the typed helpers when the caller needs *matrix.Dense or *matrix.CSR
//     methods without a type assertion.

package builder

import (
	"github.com/chiron3/QuantEcon.py/matrix"
)

// RandomStochasticMatrix returns a random n×n row-stochastic matrix.
// Options: WithK, WithSparse/WithDense, WithSeed/WithRand and the rest.
// Errors: ErrInvalidArgument, ErrInvalidWeight.
func RandomStochasticMatrix(n int, opts ...BuilderOption) (matrix.Matrix, error) {
	plan, err := NewPlan(n, opts...)
	if err != nil {
		return nil, err
	}

	return plan.Build()
}

// RandomStochasticDense is RandomStochasticMatrix forced to dense output.
func RandomStochasticDense(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	m, err := RandomStochasticMatrix(n, append(opts[:len(opts):len(opts)], WithDense())...)
	if err != nil {
		return nil, err
	}

	return m.(*matrix.Dense), nil
}

// RandomStochasticCSR is RandomStochasticMatrix forced to CSR output.
func RandomStochasticCSR(n int, opts ...BuilderOption) (*matrix.CSR, error) {
	m, err := RandomStochasticMatrix(n, append(opts[:len(opts):len(opts)], WithSparse())...)
	if err != nil {
		return nil, err
	}

	return m.(*matrix.CSR), nil
}
