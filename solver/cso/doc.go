// Package cso implements the Constrained Solution Optimizer from spec.md
// §4.3: a small mixed-integer linear program over per-student,
// per-class assignment variables, solved to optimality (within the
// configured deadline and node budget) by branch-and-bound over LP
// relaxations.
//
// The formulation and the branch-and-bound shape are grounded on
// other_examples/0cc7b06d_jjhbw-GoMILP__ilp.go.go: a milpProblem in
// (c, A, b, G, h) form, inequalities folded into equalities with slack
// columns, and a single integralityConstraints []bool marking which
// variables branch. GoMILP's own enumeration tree and branching
// heuristic types were not part of the retrieved file, so branchbound.go
// is a from-scratch depth-first driver built to the same contract: solve
// the relaxation with gonum's lp.Simplex, branch on the most-fractional
// integrality-constrained variable, track the best integer-feasible
// incumbent, and stop on node budget, deadline, or an exhausted tree.
//
// Hard constraints (one assignment per student, a per-class size band
// floor(n/k) <= size <= ceil(n/k), separation pairs, cluster cohesion
// for clusters without an internal separation pair) are encoded
// directly as equalities. There is no friend-present constraint: an
// assignment may leave a student with no same-class friend, which
// evaluate.Evaluate reports as a hard violation. The objective rewards
// same-class friend placement, and same-class placement within
// clusters that contain a separation pair, via linking variables; it
// has no demographic balance term and leaves balance to
// evaluate.Evaluate, which is why CSO and Greedy can land on different
// quality trade-offs for the same roster.
package cso
