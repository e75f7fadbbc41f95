// Package graph provides a small, thread-safe, in-memory representation of
// the friendship graph G over a roster of students.
//
// G is always simple and undirected: no self-loops, no parallel edges, no
// weights. That fixed shape is deliberate — every caller in this module
// builds exactly one kind of graph (the symmetric closure of the `friends`
// field), so the configurable directed/weighted/multi-edge machinery a
// general-purpose graph library carries is dead weight here. What is kept
// from that lineage is the representation and its guarantees:
//
//   - Constant-time vertex/edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free, monotonic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention
//   - Deterministic iteration — Vertices(), Edges(), NeighborIDs() all
//     return sorted results, which the Greedy solver's tie-breaking rules
//     depend on.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - self-reference edge (a student cannot be their own friend).
package graph
