// SPDX-License-Identifier: MIT

package sample

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/chiron3/QuantEcon.py/rng"
)

// Choice returns k distinct integers drawn uniformly from [0, n), in random
// order. k == 0 yields an empty, non-nil slice without touching r.
//
// r supplies all randomness; nil means a fresh unpredictable state. The
// amount of generator state consumed depends on the selected strategy.
//
// Errors: ErrInvalidArgument when n <= 0, k < 0 or k > n.
func Choice(n, k int, r *rand.Rand, opts ...Option) ([]int, error) {
	if err := validate(methodChoice, n, k); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return cfg.draw(rng.Resolve(r), n, k), nil
}

// ChoiceTrials runs m independent Choice trials against the same generator
// in sequence order and returns them as an m×k batch. m == 0 yields an
// empty batch.
//
// Errors: ErrInvalidArgument when n <= 0, k < 0, k > n or m < 0.
func ChoiceTrials(n, k, m int, r *rand.Rand, opts ...Option) ([][]int, error) {
	if err := validate(methodChoiceTrials, n, k); err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s: num_trials=%d must be >= 0", methodChoiceTrials, m)
	}
	cfg := newConfig(opts...)
	r = rng.Resolve(r)

	batch := make([][]int, m)
	for t := range batch {
		batch[t] = cfg.draw(r, n, k)
	}

	return batch, nil
}

// draw runs one trial with the policy-selected strategy.
func (c config) draw(r *rand.Rand, n, k int) []int {
	out := make([]int, 0, k)
	if k == 0 {
		return out
	}
	s := c.policy(n, k)
	out, redraws := s.Draw(r, n, k, out)
	c.record(s, redraws)

	return out
}
