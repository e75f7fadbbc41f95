// Package greedy implements the fast, best-effort heuristic solver from
// spec.md §4.2: connected components, cluster-first placement, then a
// move-group placement pass driven by a cost function, finished with a
// fixed-iteration local-improvement swap pass.
//
// Determinism is load-bearing here (spec.md §5, §8 property 6): every
// iteration order this package uses is over a pre-sorted name slice,
// never a raw map range — the same discipline the teacher's
// prim_kruskal.Kruskal applies via sort.SliceStable before its
// union-find pass, reused here for Greedy's "ties broken
// lexicographically" rule.
//
// Connected components (step 1) are computed with the bfs package,
// trimmed to the one traversal mode this domain needs: bfs.Walk runs
// once per undiscovered vertex, with a visit callback collecting each
// component's members directly, no second pass over Result.Order.
// Move-group unioning (step 5) uses the dsu
// package, adapted from the teacher's Kruskal union-find: a student is
// unioned with its chosen friends via dsu.Union, and the group is read
// back with dsu.Find and dsu.Groups.
package greedy
