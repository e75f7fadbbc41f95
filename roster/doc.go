// Package roster is the typed, immutable representation of an assignment
// request's input students, plus the derived indexes every solver and
// the evaluator read from: the friendship graph G, the separation set S,
// and the cluster partition C (spec.md §3).
//
// A Roster is built once per call and never mutated afterward — solvers
// and the evaluator only ever read from it, matching spec.md §5's "no
// shared mutable state crosses calls" and "Roster data is owned
// exclusively by the current call".
package roster
