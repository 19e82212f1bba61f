// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.
//   • Algorithms do not panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"

	"github.com/chiron3/QuantEcon.py/sample"
)

// ErrInvalidArgument indicates that n or k violate their domain
// (n ≤ 0, k ≤ 0 or k > n when k is given). It is the same value as
// sample.ErrInvalidArgument so a single errors.Is check covers both layers.
var ErrInvalidArgument = sample.ErrInvalidArgument

// ErrInvalidWeight indicates that a WeightFn produced a value that cannot be
// normalized: ≤ 0, NaN or ±Inf.
// Usage: if errors.Is(err, ErrInvalidWeight) { /* fix the custom WeightFn */ }.
var ErrInvalidWeight = errors.New("builder: invalid weight")

// builderErrorf wraps a sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <err>".
//
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Priority when several validations fail:
//    • ErrInvalidArgument — shape and k checks, before any draw.
//    • ErrInvalidWeight   — during row generation, before assembly.
//    Callers above this layer (markov) add their own unsupported-operation
//    sentinel only after ErrInvalidArgument checks have passed.
//
// 2) No partial results: on any error the returned matrix is nil.
