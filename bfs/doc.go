// Package bfs walks the friendship graph breadth-first to discover its
// connected components — the Greedy solver's first step (spec.md §4.2
// step 1). It is intentionally narrow: one traversal mode, one hook.
//
// What
//
//   - Visits vertices in non-decreasing distance (edge count) from a
//     start vertex, returning the visit order and each vertex's depth.
//   - Calls visit once per vertex, in visit order; visit may abort the
//     walk by returning an error.
//
// Determinism
//
//	graph.NeighborIDs returns vertex IDs sorted lexicographically, and
//	Walk enqueues neighbors in that order, so the visit sequence is
//	fully reproducible for a fixed graph and starting vertex.
//
// Usage
//
//	result, err := bfs.Walk(g, "start", func(id string, depth int) error {
//	    return nil
//	})
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
