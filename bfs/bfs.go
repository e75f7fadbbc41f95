package bfs

import (
	"errors"
	"fmt"

	"github.com/classplan/engine/graph"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for one Walk call.
type walker struct {
	graph   *graph.Graph
	visit   func(id string, depth int) error
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Walk runs breadth-first search on g starting from startID, calling
// visit once per vertex in visit order. Returns ErrGraphNil or
// ErrStartVertexNotFound for invalid input, ErrNeighbors for graph
// failures, or any error visit returns.
func Walk(g *graph.Graph, startID string, visit func(id string, depth int) error) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		visit:   visit,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}

	w.enqueue(startID, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker) enqueue(id string, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or an error occurs.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if w.visit != nil {
			if err := w.visit(item.id, item.depth); err != nil {
				return fmt.Errorf("bfs: visit error at %q: %w", item.id, err)
			}
		}

		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors retrieves neighbors and enqueues each unseen one.
// Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, item.depth+1)
		}
	}

	return nil
}
