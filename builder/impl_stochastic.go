// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_stochastic.go - validated build plans for random row-stochastic matrices.
//
// Canonical model:
//   - Row i of an m×n matrix is a random point on the probability simplex,
//     supported on all n columns, or on k columns sampled without
//     replacement when WithK(k) is given.
//   - Default weights are standard exponentials, so each row is
//     Dirichlet(1,…,1) over its support.
//
// Contract:
//   - m ≥ 1, n ≥ 1; if k is given, 1 ≤ k ≤ n. Else ErrInvalidArgument.
//   - Validation is eager (NewPlan) and happens before any draw.
//   - Every row sums to 1 (within float rounding) and holds exactly k (or n)
//     strictly positive entries.
//   - For the same seed, the CSR output densifies to exactly the dense output.
//
// Complexity:
//   - Dense: O(m*n) time and space. CSR: O(m*k) time and space plus sampler cost.

package builder

import (
	"fmt"
	"log/slog"
	"time"

	metrics "github.com/rcrowley/go-metrics"

	"github.com/chiron3/QuantEcon.py/matrix"
)

// Plan is a validated, reusable description of a random stochastic matrix.
// A Plan is immutable; Build may be called repeatedly.
type Plan struct {
	rows, cols int
	cfg        builderConfig
}

// NewPlan validates an n×n plan (a Markov transition matrix).
// Errors: ErrInvalidArgument. Complexity: O(len(opts)).
func NewPlan(n int, opts ...BuilderOption) (*Plan, error) {
	return NewRectPlan(n, n, opts...)
}

// NewRectPlan validates an m×n plan. Row-stochastic rectangular matrices are
// the transition kernels of discrete dynamic programs (states × next states).
//
// Implementation:
//   - Stage 1: resolve options.
//   - Stage 2: check m, n against MinStates, then k against [MinK, n].
//
// Errors: ErrInvalidArgument. Complexity: O(len(opts)).
func NewRectPlan(m, n int, opts ...BuilderOption) (*Plan, error) {
	cfg := newBuilderConfig(opts...)

	err := validateShape(MethodNewPlan, m, n)
	if err == nil && cfg.hasK {
		err = validateK(MethodNewPlan, cfg.k, n)
	}
	if err != nil {
		cfg.logger.Debug("plan rejected", slog.Int("rows", m), slog.Int("cols", n), slog.Any("error", err))
		return nil, err
	}

	return &Plan{rows: m, cols: n, cfg: cfg}, nil
}

// Shape returns (rows, cols).
func (p *Plan) Shape() (rows, cols int) { return p.rows, p.cols }

// K returns the non-zeros-per-row count and whether it was given.
func (p *Plan) K() (int, bool) { return p.cfg.k, p.cfg.hasK }

// Sparse reports whether Build returns a *matrix.CSR.
func (p *Plan) Sparse() bool { return p.cfg.sparse }

// Build draws and assembles one matrix. The dynamic type is *matrix.CSR when
// the plan is sparse and *matrix.Dense otherwise.
//
// Implementation:
//   - Stage 1: resolve the random state (shared, seeded or fresh).
//   - Stage 2: generate all rows sequentially into one arena.
//   - Stage 3: normalize and scatter with the selected assembler.
//   - Stage 4: record metrics and a debug record.
//
// Errors: ErrInvalidWeight from a custom WeightFn. No partial results.
func (p *Plan) Build() (matrix.Matrix, error) {
	start := time.Now()
	gen := rowGenerator{rows: p.rows, cols: p.cols, cfg: p.cfg}
	arena, err := gen.generate(MethodBuild, p.cfg.random())
	if err != nil {
		p.cfg.logger.Debug("build failed", slog.Any("error", err))
		return nil, err
	}

	out, err := assemblerFor(p.cfg.sparse).assemble(p.rows, p.cols, arena, p.cfg.workers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	nnz := p.rows * arena.width
	if reg := p.cfg.registry; reg != nil {
		metrics.GetOrRegisterCounter(MetricRows, reg).Inc(int64(p.rows))
		metrics.GetOrRegisterCounter(MetricNNZ, reg).Inc(int64(nnz))
		metrics.GetOrRegisterTimer(MetricBuild, reg).UpdateSince(start)
	}
	p.cfg.logger.Debug("built stochastic matrix",
		slog.Int("rows", p.rows),
		slog.Int("cols", p.cols),
		slog.Int("k", arena.width),
		slog.Bool("sparse", p.cfg.sparse),
		slog.Int("nnz", nnz),
		slog.Int("workers", p.cfg.workers),
		slog.Duration("elapsed", time.Since(start)),
	)

	return out, nil
}
