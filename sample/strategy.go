// SPDX-License-Identifier: MIT

package sample

import (
	"fmt"
	"math/rand/v2"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// DefaultCrossover is the k/n ratio at or below which RatioPolicy selects
// Rejection. Above it the expected number of collisions grows quickly and
// Permutation is cheaper.
const DefaultCrossover = 0.25

// Strategy draws k distinct values from [0, n).
//
// Draw appends exactly k values to dst and returns the extended slice along
// with the number of draws discarded as collisions. Callers guarantee
// 0 < k <= n. Implementations must be stateless so a single value can serve
// concurrent callers holding distinct generators.
type Strategy interface {
	Draw(r *rand.Rand, n, k int, dst []int) ([]int, int)
	Name() string
}

// Policy selects a Strategy for a given (n, k).
type Policy func(n, k int) Strategy

var (
	// Rejection draws with replacement and redraws on collision.
	Rejection Strategy = rejection{}

	// Permutation shuffles the first k slots of 0..n-1.
	Permutation Strategy = permutation{}
)

// RatioPolicy returns a Policy choosing Rejection when k <= crossover*n and
// Permutation otherwise. Panics if crossover is outside [0,1].
func RatioPolicy(crossover float64) Policy {
	if !(crossover >= 0 && crossover <= 1) {
		panic(fmt.Sprintf("sample: RatioPolicy: crossover must be in [0,1], got %g", crossover))
	}

	return func(n, k int) Strategy {
		if float64(k) <= crossover*float64(n) {
			return Rejection
		}

		return Permutation
	}
}

// rejection tracks drawn values in a 64-bit roaring bitmap so that n is not
// bounded by the 32-bit container range.
type rejection struct{}

func (rejection) Name() string { return "rejection" }

// Draw performs incremental selection; expected work is O(k) for k ≪ n.
func (rejection) Draw(r *rand.Rand, n, k int, dst []int) ([]int, int) {
	drawn := roaring64.New()
	redraws := 0
	for picked := 0; picked < k; {
		v := r.IntN(n)
		if drawn.Contains(uint64(v)) {
			redraws++
			continue
		}
		drawn.Add(uint64(v))
		dst = append(dst, v)
		picked++
	}

	return dst, redraws
}

// permutation is a partial Fisher–Yates shuffle: slot i receives a uniform
// pick from the not-yet-placed tail, so the first k slots are a uniform
// ordered k-subset.
type permutation struct{}

func (permutation) Name() string { return "permutation" }

// Draw runs in O(n) time and O(n) scratch space.
func (permutation) Draw(r *rand.Rand, n, k int, dst []int) ([]int, int) {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return append(dst, pool[:k]...), 0
}
