// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/chiron3/QuantEcon.py/matrix"
)

// MarkovChain is a finite-state Markov chain with a dense row-stochastic
// transition matrix. It is immutable: accessors return copies.
type MarkovChain struct {
	p *matrix.Dense
}

// NewMarkovChain validates the transition matrix and copies it into a new chain.
//
// Implementation:
//   - Stage 1: the matrix must be non-nil, square and row-stochastic
//     (matrix.ValidateStochastic with opts).
//   - Stage 2: CSR input is rejected with ErrNotImplemented.
//   - Stage 3: copy it into a chain-owned Dense.
//
// Errors: ErrInvalidArgument (joined with the matrix sentinel that failed),
// ErrNotImplemented.
// Complexity: O(n²).
func NewMarkovChain(transition matrix.Matrix, opts ...matrix.Option) (*MarkovChain, error) {
	if err := matrix.ValidateSquare(transition); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodNewMarkovChain, ErrInvalidArgument, err)
	}
	if err := matrix.ValidateStochastic(transition, opts...); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodNewMarkovChain, ErrInvalidArgument, err)
	}
	if _, ok := transition.(*matrix.CSR); ok {
		return nil, fmt.Errorf("%s: %w", methodNewMarkovChain, ErrNotImplemented)
	}

	p, err := copyDense(transition)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewMarkovChain, err)
	}

	return &MarkovChain{p: p}, nil
}

// copyDense returns a chain-owned Dense copy of m.
func copyDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}
	n := m.Rows()
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// P returns a copy of the transition matrix.
func (mc *MarkovChain) P() *matrix.Dense {
	return mc.p.Clone().(*matrix.Dense)
}

// NumStates returns the number of states n.
func (mc *MarkovChain) NumStates() int { return mc.p.Rows() }

// Prob returns the probability of moving from state i to state j.
// Errors: matrix.ErrOutOfRange.
func (mc *MarkovChain) Prob(i, j int) (float64, error) { return mc.p.At(i, j) }

// Gonum returns the transition matrix as a new gonum *mat.Dense.
func (mc *MarkovChain) Gonum() (*mat.Dense, error) { return matrix.ToGonum(mc.p) }

// String renders the chain header followed by the transition matrix.
func (mc *MarkovChain) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Markov chain with transition matrix (%d states)\nP =\n", mc.NumStates())
	b.WriteString(mc.p.String())

	return b.String()
}
