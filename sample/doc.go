// Package sample draws k distinct integers out of [0, n) without
// replacement, one trial at a time or as a batch of independent trials.
//
// Two interchangeable strategies implement the draw:
//
//   - Rejection: draw with replacement and redraw on collision, tracking the
//     chosen values in a roaring bitmap. Expected O(k) work when k ≪ n.
//   - Permutation: partial Fisher–Yates shuffle of 0..n-1, keeping the first
//     k positions. O(n) work with no collisions, preferred when k ≈ n.
//
// A Policy picks the strategy per call; the default RatioPolicy switches on
// k/n at DefaultCrossover. Both strategies are uniform over ordered k-subsets,
// so the choice only affects cost and the amount of generator state consumed.
//
// Every draw reads from an explicit *rand.Rand. Passing nil asks for a fresh
// unpredictable state (see package rng); pass a seeded state for
// reproducible output.
//
// Errors:
//
//	ErrInvalidArgument is returned, wrapped with call context, when n <= 0,
//	k < 0, k > n or a negative trial count is requested. Branch with
//	errors.Is.
package sample
