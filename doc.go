// Package quantecon generates random finite-state Markov transition
// matrices and draws distinct samples without replacement, with seeded
// reproducibility across dense and sparse representations.
//
// What is in the box?
//
//   - Sampling: choose k distinct indices out of n, one draw or a batch
//   - Stochastic matrices: random row-stochastic n×n (or m×n) matrices,
//     dense or CSR, optionally with exactly k non-zeros per row
//   - Markov chains: random chains wrapped in an immutable MarkovChain
//   - Probability vectors: points drawn uniformly from the simplex
//
// Why?
//
//   - Reproducible – one explicit random state per call, MT19937 under the hood
//   - Representation-agnostic – CSR output densifies to exactly the dense
//     output for the same seed
//   - Observable – optional slog logging and go-metrics counters
//
// Everything is organized under five subpackages:
//
//	rng/     — seeded random states (gonum MT19937 over math/rand/v2)
//	sample/  — Choice / ChoiceTrials with rejection and permutation strategies
//	matrix/  — Dense and CSR storage, validators, gonum converters
//	builder/ — RandomStochasticMatrix, Plan, RandomProbVec
//	markov/  — RandomMarkovChain, NewMarkovChain
//
// Quick example:
//
//	mc, err := markov.RandomMarkovChain(5, builder.WithK(3), builder.WithSeed(1234))
//
// draws a 5-state chain where every state moves to exactly 3 others.
//
//	go get github.com/chiron3/QuantEcon.py
package quantecon
