package solver

import (
	"context"

	"github.com/classplan/engine/engineerr"
	"github.com/classplan/engine/evaluate"
	"github.com/classplan/engine/roster"
)

// Solver produces an Assignment of r's students into k classes, honoring
// ctx's deadline. A Solver never retries internally and never mutates r.
type Solver interface {
	// Name identifies this solver for metrics labels and
	// EvaluationRecord.StrategyUsed ("greedy" or "cso").
	Name() string

	// Solve returns a feasible Assignment, or an *engineerr.Error from
	// the closed set in spec.md §7 (ASSIGNMENT_FAILED, NO_SOLUTION_FOUND,
	// OPTIMIZATION_TIMEOUT).
	Solve(ctx context.Context, r *roster.Roster, k int) (evaluate.Assignment, *engineerr.Error)
}

// Registry maps a solver's Name() to its implementation. The
// orchestrator looks up config.Config.Algorithm here rather than
// switching on a string literal at the call site.
type Registry map[string]Solver

// NewRegistry builds a Registry from the given solvers, keyed by each
// one's Name().
func NewRegistry(solvers ...Solver) Registry {
	reg := make(Registry, len(solvers))
	for _, s := range solvers {
		reg[s.Name()] = s
	}

	return reg
}
