// SPDX-License-Identifier: MIT

package rng

import (
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/mathext/prng"
)

// NewSource returns an MT19937 source seeded with seed.
// Complexity: O(1) (fixed 624-word state initialization).
func NewSource(seed uint64) *prng.MT19937 {
	src := prng.NewMT19937()
	src.Seed(seed)

	return src
}

// New returns a random state over an MT19937 source seeded with seed.
// Two states built from the same seed produce the same sequence.
func New(seed uint64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// Fresh returns a random state with an unpredictable seed. It is the
// default used only at the outermost call when the caller supplies none.
func Fresh() *rand.Rand {
	return New(rand.Uint64())
}

// Resolve returns r when it is non-nil and a Fresh state otherwise.
func Resolve(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}

	return Fresh()
}

// lockedSource serializes access to an underlying source.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

// Uint64 implements rand.Source.
func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.src.Uint64()
}

// Locked returns a random state whose every draw from src is guarded by a
// mutex. Panics on nil src (programmer error).
func Locked(src rand.Source) *rand.Rand {
	if src == nil {
		panic("rng: Locked(nil)")
	}

	return rand.New(&lockedSource{src: src})
}
