// Package markov wraps row-stochastic matrices as finite-state Markov chains
// and generates random chains.
//
// RandomMarkovChain draws an n×n transition matrix through the builder
// package (optionally with k non-zero transitions per state) and wraps it in
// an immutable MarkovChain. Chains are dense; asking for a sparse chain is
// reported as ErrNotImplemented after the arguments have been validated.
//
// Analysis (stationary distributions, simulation, communication classes) is
// out of scope; hand P() or Gonum() to downstream code instead.
package markov
