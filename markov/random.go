// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"

	"github.com/chiron3/QuantEcon.py/builder"
	"github.com/chiron3/QuantEcon.py/matrix"
)

// RandomMarkovChain returns a chain with a random n×n transition matrix.
// It accepts every builder option; WithK(k) restricts each state to k
// reachable next states. The chain is owned by the caller.
//
// Implementation:
//   - Stage 1: validate n and k through builder.NewPlan (no draws yet).
//   - Stage 2: a sparse plan is rejected with ErrNotImplemented.
//   - Stage 3: build the dense matrix and wrap it.
//
// Errors: ErrInvalidArgument, ErrNotImplemented, builder.ErrInvalidWeight.
func RandomMarkovChain(n int, opts ...builder.BuilderOption) (*MarkovChain, error) {
	plan, err := builder.NewPlan(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomMarkovChain, err)
	}
	if plan.Sparse() {
		return nil, fmt.Errorf("%s: %w", methodRandomMarkovChain, ErrNotImplemented)
	}

	m, err := plan.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomMarkovChain, err)
	}

	return &MarkovChain{p: m.(*matrix.Dense)}, nil
}
