// Package builder generates random row-stochastic matrices: every row is a
// probability distribution over the columns, supported either on all
// columns or on k columns sampled without replacement.
//
// The package offers the following key components:
//
//   - Entry points:
//     – RandomStochasticMatrix: n×n, dense or CSR (matrix.Matrix).
//     – RandomStochasticDense / RandomStochasticCSR: typed variants.
//     – NewPlan / NewRectPlan + Plan.Build: validate once, build many times.
//     – RandomProbVec: m probability vectors of length k.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithK, WithSparse, WithDense, WithSeed, WithRand, WithWorkers,
//     WithLogger, WithMetrics, WithSamplerPolicy.
//   - Weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     standard exponential (rows are Dirichlet(1,…,1)).
//     – ExponentialWeightFn: Exp(rate).
//     – UniformWeightFn:     U[min,max), min > 0.
//     – ConstantWeightFn:    fixed positive value (uniform rows).
//
// Guarantees:
//
//   - Parameters are validated before any draw; failures wrap
//     ErrInvalidArgument (the same value as sample.ErrInvalidArgument).
//   - Rows are drawn strictly in order from one random state: columns first,
//     then weights. Dense and CSR outputs therefore hold the same values for
//     the same seed, and WithWorkers only parallelizes post-draw work.
//   - CSR column indices are kept in draw order (not sorted).
//
// See individual function documentation for detailed contracts.
package builder
