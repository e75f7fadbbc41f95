// Package solver defines the single capability both assignment
// strategies share (spec.md §9): Solve(roster, K, deadline) -> Assignment
// or error. Greedy (package solver/greedy) and CSO (package solver/cso)
// each implement Solver; the orchestrator selects between them through a
// Registry keyed by name rather than a type switch, matching the
// teacher's preference for small composable interfaces over sealed enums.
package solver
