package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/graph"
)

// BFS computes shortest paths from source with a label-correcting
// queue search: vertices re-enter the queue whenever a strictly shorter
// path to them is found, and full vertex sequences are copied on every
// improvement.
//
// It is deliberately simple and deliberately inefficient — worst case
// exponential in pathological graphs — and exists as an oracle to
// cross-check Dijkstra, plus as a baseline in the benchmark driver.
// Validation mirrors Dijkstra's (ErrNilGraph, ErrNilWeights,
// ErrVertexNotFound).
func BFS(wg *graph.Weighted, source graph.VertexID) (map[graph.VertexID]Path, error) {
	if wg == nil || wg.Graph == nil {
		return nil, ErrNilGraph
	}
	if wg.EdgeWeights == nil {
		return nil, ErrNilWeights
	}
	if !wg.Graph.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}

	results := map[graph.VertexID]Path{
		source: {Distance: 0, Vertices: []graph.VertexID{source}},
	}

	queue := []graph.VertexID{source}
	for len(queue) > 0 {
		vertexID := queue[0]
		queue = queue[1:]

		vertex := wg.Graph.Vertex(vertexID)
		current := results[vertexID]

		for _, edge := range vertex.Edges {
			total := current.Distance + wg.EdgeWeights.Get(int(edge.ID))

			// Keep a previously found path when it is at least as short.
			known, found := results[edge.To]
			if found && total >= known.Distance {
				continue
			}

			vertices := make([]graph.VertexID, 0, len(current.Vertices)+1)
			vertices = append(vertices, current.Vertices...)
			vertices = append(vertices, edge.To)
			results[edge.To] = Path{Distance: total, Vertices: vertices}

			queue = append(queue, edge.To)
		}
	}

	return results, nil
}
