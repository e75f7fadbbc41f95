package cso

import (
	"context"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const integralityTolerance = 1e-6

// bnbNode is one branch-and-bound subproblem: the root relaxation plus a
// set of variables fixed to 0 or 1 by the branching decisions on the
// path from the root.
type bnbNode struct {
	fixed map[int]float64
}

// branchAndBound drives the enumeration tree GoMILP's milpProblem.solve
// describes, rebuilt from scratch here since the retrieved file did not
// carry its enumTree/subProblem machinery: a depth-first stack of
// bnbNode values, each relaxed with lp.Simplex, bounded by maxNodes and
// ctx's deadline, branching on the most-fractional integrality-marked
// variable.
type branchAndBound struct {
	a           *mat.Dense
	b           []float64
	c           []float64
	integrality []bool
	maxNodes    int
}

// incumbent is the best integer-feasible solution found so far.
type incumbent struct {
	x   []float64
	obj float64
}

// solve returns the best integer-feasible solution found within
// maxNodes expansions or ctx's deadline, whichever comes first, and
// whether the search ever found a feasible integer solution at all.
// timedOut reports whether the search stopped because of the deadline
// or node budget rather than exhausting the tree.
func (bb *branchAndBound) solve(ctx context.Context) (best *incumbent, timedOut bool) {
	stack := []bnbNode{{fixed: map[int]float64{}}}
	nodesExplored := 0

	for len(stack) > 0 {
		if ctx.Err() != nil {
			return best, true
		}
		if bb.maxNodes > 0 && nodesExplored >= bb.maxNodes {
			return best, true
		}

		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodesExplored++

		a, b := bb.augment(node.fixed)
		objF, x, err := lp.Simplex(bb.c, a, b, 0, nil)
		if err != nil {
			continue // infeasible subproblem, prune
		}
		if best != nil && objF >= best.obj-1e-9 {
			continue // relaxation cannot beat the current incumbent, prune
		}

		branchVar, frac := mostFractional(x, bb.integrality, node.fixed)
		if branchVar < 0 {
			best = &incumbent{x: append([]float64(nil), x...), obj: objF}
			continue
		}
		_ = frac

		down := bnbNode{fixed: cloneFixed(node.fixed)}
		down.fixed[branchVar] = 0
		up := bnbNode{fixed: cloneFixed(node.fixed)}
		up.fixed[branchVar] = 1
		stack = append(stack, down, up)
	}

	return best, false
}

// augment appends one equality row per fixed variable to a's and b's
// base system, pinning that column to its branched value.
func (bb *branchAndBound) augment(fixed map[int]float64) (*mat.Dense, []float64) {
	if len(fixed) == 0 {
		return bb.a, bb.b
	}

	baseRows, cols := bb.a.Dims()
	a := mat.NewDense(baseRows+len(fixed), cols, nil)
	a.Copy(bb.a)
	b := append([]float64(nil), bb.b...)

	i := baseRows
	for idx, val := range fixed {
		row := make([]float64, cols)
		row[idx] = 1
		a.SetRow(i, row)
		b = append(b, val)
		i++
	}

	return a, b
}

// mostFractional returns the integrality-constrained, not-yet-fixed
// column index whose relaxed value sits closest to 0.5, or -1 if every
// such column is already integral within tolerance.
func mostFractional(x []float64, integrality []bool, fixed map[int]float64) (idx int, frac float64) {
	idx = -1
	bestDist := math.Inf(1)
	for i, isInt := range integrality {
		if !isInt {
			continue
		}
		if _, ok := fixed[i]; ok {
			continue
		}
		v := x[i]
		dist := math.Abs(v - math.Round(v))
		if dist <= integralityTolerance {
			continue
		}
		distFromHalf := math.Abs(v - 0.5)
		if distFromHalf < bestDist {
			bestDist = distFromHalf
			idx = i
			frac = v
		}
	}

	return idx, frac
}

func cloneFixed(m map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(m)+1)
	for k, v := range m {
		out[k] = v
	}

	return out
}

// deadlineContext is a convenience CSO.Solve uses to derive a
// per-solve deadline from config.Config.TimeoutSeconds.
func deadlineContext(parent context.Context, seconds int) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, time.Duration(seconds)*time.Second)
}
