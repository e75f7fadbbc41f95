package cso

import (
	"context"
	"math"
	"time"

	"github.com/classplan/engine/config"
	"github.com/classplan/engine/engineerr"
	"github.com/classplan/engine/evaluate"
	"github.com/classplan/engine/roster"
	"go.uber.org/zap"
)

// CSO is the branch-and-bound Solver from spec.md §4.3.
type CSO struct {
	logger         *zap.Logger
	weightFriend   float64
	weightCluster  float64
	maxNodes       int
	timeoutSeconds int
}

// New builds a CSO solver. weights.Friendship drives the friendship term
// of the ILP objective; weights.Cluster drives the soft cohesion term
// used for any cluster whose members contain a separation pair (see
// buildModel); maxNodes and timeoutSeconds come from
// config.Config.MaxNodes / TimeoutSeconds.
func New(logger *zap.Logger, weights config.Weights, maxNodes, timeoutSeconds int) *CSO {
	return &CSO{
		logger:         logger,
		weightFriend:   weights.Friendship,
		weightCluster:  weights.Cluster,
		maxNodes:       maxNodes,
		timeoutSeconds: timeoutSeconds,
	}
}

func (s *CSO) Name() string { return "cso" }

func (s *CSO) Solve(ctx context.Context, r *roster.Roster, k int) (evaluate.Assignment, *engineerr.Error) {
	start := time.Now()
	subCtx, cancel := deadlineContext(ctx, s.timeoutSeconds)
	defer cancel()

	n := r.Size()
	capMax := int(math.Ceil(float64(n) / float64(k)))
	classMin := n / k // integer division == floor for nonnegative n,k
	m := buildModel(r, k, capMax, classMin)
	a, b, c, integrality := m.build(s.weightFriend, s.weightCluster)

	bb := &branchAndBound{a: a, b: b, c: c, integrality: integrality, maxNodes: s.maxNodes}
	best, timedOut := bb.solve(subCtx)

	elapsed := time.Since(start).Seconds()
	if best == nil {
		if timedOut {
			return nil, engineerr.OptimizationTimeout(elapsed)
		}

		return nil, engineerr.NoSolutionFound("no integer-feasible assignment exists under the current hard constraints")
	}

	s.logger.Debug("cso solve complete",
		zap.Float64("objective", best.obj),
		zap.Float64("elapsedSeconds", elapsed),
		zap.Bool("timedOut", timedOut))

	return decode(m, best.x), nil
}

// decode reads the assignment class off the relaxation's x block for
// each student, rounding to the nearest class and falling back to the
// highest-valued column for any student whose row did not resolve
// cleanly to a single 1 (a numerical edge case at tight deadlines).
func decode(m *model, x []float64) evaluate.Assignment {
	assignment := make(evaluate.Assignment, m.n)
	for s, name := range m.names {
		best, bestVal := 0, -1.0
		for cls := 0; cls < m.k; cls++ {
			v := x[m.xIdx(s, cls)]
			if v > bestVal {
				bestVal = v
				best = cls
			}
		}
		assignment[name] = best
	}

	return assignment
}
