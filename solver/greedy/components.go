package greedy

import (
	"github.com/classplan/engine/bfs"
	"github.com/classplan/engine/graph"
)

// connectedComponents returns G's connected components as slices of
// vertex names, each in BFS visit order, ordered by each component's
// lexicographically smallest member — deterministic across runs for a
// fixed graph.
func connectedComponents(g *graph.Graph) [][]string {
	visited := make(map[string]bool, g.VertexCount())
	var components [][]string

	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		var component []string
		_, _ = bfs.Walk(g, v, func(id string, _ int) error {
			visited[id] = true
			component = append(component, id)

			return nil
		})
		components = append(components, component)
	}

	return components
}
