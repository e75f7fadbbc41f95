package bfs

import "errors"

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Result is the outcome of one breadth-first traversal: the visit order
// and each visited vertex's distance, in edges, from the start.
type Result struct {
	Order []string
	Depth map[string]int
}
