// Package builder defines shared constants used by the stochastic matrix
// builders: method tags, bounds and metric names.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors and log records with the constructor name.
//-----------------------------------------------------------------------------

const (
	// MethodNewPlan is the canonical name for NewPlan/NewRectPlan validation.
	MethodNewPlan = "NewPlan"
	// MethodBuild is the canonical name for Plan.Build.
	MethodBuild = "Build"
	// MethodRandomStochasticMatrix is the canonical name for RandomStochasticMatrix.
	MethodRandomStochasticMatrix = "RandomStochasticMatrix"
	// MethodRandomProbVec is the canonical name for RandomProbVec.
	MethodRandomProbVec = "RandomProbVec"
)

//-----------------------------------------------------------------------------
// Bounds
//-----------------------------------------------------------------------------

// MinStates is the smallest accepted number of rows or columns.
const MinStates = 1

// MinK is the smallest accepted non-zeros-per-row count when k is given.
const MinK = 1

// DefaultWorkers is the number of goroutines used for normalization and
// scatter unless WithWorkers overrides it.
const DefaultWorkers = 1

//-----------------------------------------------------------------------------
// Metric names (recorded only when WithMetrics supplies a registry)
//-----------------------------------------------------------------------------

const (
	// MetricRows counts generated rows across builds.
	MetricRows = "builder.rows"
	// MetricNNZ counts stored entries across builds.
	MetricNNZ = "builder.nnz"
	// MetricBuild times each successful Plan.Build.
	MetricBuild = "builder.build"
)
