// Package dsu implements a disjoint-set (union-find) forest with path
// compression and union by rank.
//
// The Greedy solver uses it in one place: building each student's move
// group during the placement pass (step 5 of spec.md §4.2), where the
// student is unioned with its chosen friends and the group is read back
// as that student's set. Cluster placement and the local-improvement
// swap pass do not use it. The operations are the same ones Kruskal's
// MST construction needs when deciding whether an edge would close a
// cycle.
//
// Determinism: union(a, b) always attaches the lower-rank root under the
// higher-rank root, and increments rank only on a tie. Given the same
// sequence of Union calls, the resulting forest shape is reproducible.
package dsu
