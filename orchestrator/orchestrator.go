package orchestrator

import (
	"context"
	"time"

	"github.com/classplan/engine/config"
	"github.com/classplan/engine/engineerr"
	"github.com/classplan/engine/evaluate"
	"github.com/classplan/engine/metrics"
	"github.com/classplan/engine/roster"
	"github.com/classplan/engine/solver"
	"github.com/classplan/engine/validate"
	"go.uber.org/zap"
)

// Orchestrator is the engine's single entry point.
type Orchestrator struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Registry
	solvers solver.Registry
}

// New builds an Orchestrator from its fully-constructed dependencies.
// Wiring config.Load, logging.New, metrics.New, and solver.NewRegistry
// into these arguments is the caller's job (cmd/classplan does it for
// the demo binary).
func New(cfg *config.Config, logger *zap.Logger, reg *metrics.Registry, solvers solver.Registry) *Orchestrator {
	return &Orchestrator{cfg: cfg, logger: logger, metrics: reg, solvers: solvers}
}

// fallbackEligible is the closed set of primary-solver failures spec.md
// §4.5 allows a one-shot Greedy fallback for. Every other failure —
// including validation errors, which never reach here — propagates
// straight to the caller.
func fallbackEligible(err *engineerr.Error) bool {
	switch err.Code {
	case engineerr.CodeOptimizationTimeout, engineerr.CodeNoSolutionFound:
		return true
	default:
		return false
	}
}

// Plan validates students, runs the configured primary solver, falls
// back to Greedy once when FallbackEnabled and the primary fails for an
// eligible reason, and returns the resulting EvaluationRecord alongside
// the Assignment it scores. A recovered panic surfaces as
// INTERNAL_SERVER_ERROR rather than propagating.
func (o *Orchestrator) Plan(ctx context.Context, students []roster.Student, classesNumber int) (rec *evaluate.EvaluationRecord, assignment evaluate.Assignment, solveErr *engineerr.Error) {
	defer func() {
		if p := recover(); p != nil {
			o.logger.Error("panic recovered in Plan", zap.Any("panic", p))
			rec = nil
			assignment = nil
			solveErr = engineerr.InternalServerError("recovered panic during planning")
		}
	}()

	r, verr := validate.Validate(o.logger, students, classesNumber, o.cfg.MinClassSize)
	if verr != nil {
		return nil, nil, verr
	}

	primary, ok := o.solvers[string(o.cfg.Algorithm)]
	if !ok {
		return nil, nil, engineerr.AssignmentFailed("no solver registered for configured algorithm " + string(o.cfg.Algorithm))
	}

	strategyUsed := primary.Name()
	fallbackUsed := false
	fallbackReason := ""

	start := time.Now()
	assignment, solveErr = primary.Solve(ctx, r, classesNumber)
	if solveErr != nil {
		if !o.cfg.FallbackEnabled || !fallbackEligible(solveErr) || primary.Name() == "greedy" {
			return nil, nil, solveErr
		}

		fallback, ok := o.solvers["greedy"]
		if !ok {
			return nil, nil, solveErr
		}

		o.logger.Warn("primary solver failed, falling back to greedy",
			zap.String("primary", primary.Name()), zap.String("code", solveErr.Code))
		o.metrics.IncFallback(solveErr.Code)

		fallbackUsed = true
		fallbackReason = solveErr.Code
		strategyUsed = fallback.Name()

		assignment, solveErr = fallback.Solve(ctx, r, classesNumber)
		if solveErr != nil {
			return nil, nil, solveErr
		}
	}
	elapsed := time.Since(start)

	rec = evaluate.Evaluate(r, assignment, classesNumber)
	rec.ExecutionTime = elapsed
	rec.StrategyUsed = strategyUsed
	rec.FallbackUsed = fallbackUsed
	rec.FallbackReason = fallbackReason

	o.metrics.ObserveSolverDuration(strategyUsed, elapsed.Seconds())
	o.metrics.SetLastQuality(rec.Quality)
	o.logger.Info("plan complete",
		zap.String("strategy_used", strategyUsed),
		zap.Bool("fallback_used", fallbackUsed),
		zap.Int("quality", rec.Quality),
		zap.Duration("execution_time", elapsed))

	return rec, assignment, nil
}
