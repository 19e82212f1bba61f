// Package rng provides the explicit random state threaded through every
// generator in this module.
//
// A random state is a *rand.Rand from math/rand/v2 driven by a Mersenne
// Twister (MT19937) source from gonum's prng package, the same generator
// family NumPy's RandomState uses. Nothing in the module reads a
// package-level generator: callers pass a state, or a seed from which one
// is built, and identical seeds reproduce identical draws.
//
// Concurrency:
//
//	A *rand.Rand is not safe for concurrent use. Give each goroutine its own
//	state, or wrap a shared source with Locked. Locking makes sharing safe,
//	not reproducible: interleaving between goroutines is still scheduler
//	dependent.
package rng
