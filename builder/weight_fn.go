// Package builder provides the weight distributions drawn for each stored
// entry before row normalization.
package builder

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// WeightFn produces one unnormalized weight from r. It must be
// deterministic for a given state and return a finite value > 0.
type WeightFn func(r *rand.Rand) float64

// DefaultWeightFn draws from the standard exponential distribution.
// Normalizing k such draws yields a point uniform on the (k-1)-simplex.
var DefaultWeightFn = ExponentialWeightFn(1)

// ExponentialWeightFn returns a WeightFn sampling Exp(rate). An exact 0 is
// redrawn so that every weight is strictly positive.
// Panics if rate ≤ 0 or is not finite.
// Complexity: O(1) expected.
func ExponentialWeightFn(rate float64) WeightFn {
	if !(rate > 0) || math.IsInf(rate, 0) {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return func(r *rand.Rand) float64 {
		d := distuv.Exponential{Rate: rate, Src: r}
		for {
			if w := d.Rand(); w > 0 {
				return w
			}
		}
	}
}

// UniformWeightFn returns a WeightFn sampling U[min, max).
// Panics unless 0 < min ≤ max < +Inf. When min == max no draw is consumed.
// Complexity: O(1).
func UniformWeightFn(min, max float64) WeightFn {
	if !(min > 0) || max < min || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}
	if min == max {
		return ConstantWeightFn(min)
	}

	return func(r *rand.Rand) float64 {
		return distuv.Uniform{Min: min, Max: max, Src: r}.Rand()
	}
}

// ConstantWeightFn returns a WeightFn that always yields value and consumes
// no draws; rows then become uniform over their stored columns.
// Panics if value ≤ 0 or is not finite.
// Complexity: O(1).
func ConstantWeightFn(value float64) WeightFn {
	if !(value > 0) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// WithConstantWeight sets a fixed weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithExponentialWeight sets weights ∼ Exp(rate) via ExponentialWeightFn.
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}

// validWeight reports whether w can be normalized.
func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0)
}
