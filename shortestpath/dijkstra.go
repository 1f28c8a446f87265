// Package shortestpath implements single-source shortest paths on
// weighted directed graphs: Dijkstra's algorithm over any addressable
// heap backend, and a label-correcting BFS used as a cross-check.
package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/graph"
	"github.com/katalvlaran/lvlheap/heaps"
)

// Dijkstra computes shortest paths from source to every reachable
// vertex of wg, ordering its frontier with a heap produced by factory.
//
// The algorithm is backend-agnostic: when a vertex already has a heap
// entry the entry's key is decreased in place, otherwise a new entry is
// added. Which of the two is cheap is the backend's business.
//
// Returns a map holding only reachable vertices; each Path lists the
// vertices from source to the target inclusive, and the source itself
// maps to {0, [source]}.
//
// Preconditions and validation (in order):
//  1. wg and wg.Graph must be non-nil (ErrNilGraph).
//  2. wg.EdgeWeights must be non-nil (ErrNilWeights).
//  3. source must exist in the graph (ErrVertexNotFound).
//  4. No edge may have negative weight (ErrNegativeWeight, detected by
//     an upfront O(E) scan and re-checked against overflow during
//     relaxation).
//
// Complexity is determined by the injected heap: with V extractions and
// up to E decreases, an O(1)-decrease backend gives O(E + V log V).
func Dijkstra(wg *graph.Weighted, source graph.VertexID, factory heaps.Factory[DistanceNode], opts ...Option) (map[graph.VertexID]Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if wg == nil || wg.Graph == nil {
		return nil, ErrNilGraph
	}
	if wg.EdgeWeights == nil {
		return nil, ErrNilWeights
	}
	if !wg.Graph.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}

	// Fail fast on negative weights before touching the heap.
	for _, vertex := range wg.Graph.Vertices() {
		for _, edge := range vertex.Edges {
			if weight := wg.EdgeWeights.Get(int(edge.ID)); weight < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, vertex.ID, edge.To, weight)
			}
		}
	}

	var stats OpStats

	// prev[v] is the vertex preceding v on its shortest path.
	prev := make(map[graph.VertexID]graph.VertexID)

	// The frontier, keyed by vertex id, ordered by tentative distance.
	frontier := factory.New()
	frontier.Add(DistanceNode{Vertex: source, Distance: 0}, int(source))
	stats.Adds++

	results := make(map[graph.VertexID]Path)
	for frontier.Size() > 0 {
		minNode, _ := frontier.PopMin()
		stats.Pops++

		// Skip vertices whose shortest path is already final.
		if _, done := results[minNode.Vertex]; done {
			continue
		}
		results[minNode.Vertex] = Path{Distance: minNode.Distance}

		fromVertex := wg.Graph.Vertex(minNode.Vertex)
		for _, edge := range fromVertex.Edges {
			to := edge.To

			// Already finalized: a shorter path exists.
			if _, done := results[to]; done {
				continue
			}

			weight := wg.EdgeWeights.Get(int(edge.ID))
			total := minNode.Distance + weight
			if total < 0 {
				return nil, fmt.Errorf("%w: distance overflow relaxing edge %d→%d", ErrNegativeWeight, minNode.Vertex, to)
			}

			current, inHeap := frontier.Lookup(int(to))
			if !inHeap {
				frontier.Add(DistanceNode{Vertex: to, Distance: total}, int(to))
				stats.Adds++
				prev[to] = minNode.Vertex
			} else if total < current.Distance {
				frontier.DecreaseKey(DistanceNode{Vertex: to, Distance: total}, int(to))
				stats.DecreaseKeys++
				prev[to] = minNode.Vertex
			}
		}
	}

	// Trace each path backwards through prev and reverse it in place.
	for vertexID, path := range results {
		v := vertexID
		for v != source {
			path.Vertices = append(path.Vertices, v)
			v = prev[v]
		}
		path.Vertices = append(path.Vertices, source)

		for i, j := 0, len(path.Vertices)-1; i < j; i, j = i+1, j-1 {
			path.Vertices[i], path.Vertices[j] = path.Vertices[j], path.Vertices[i]
		}
		results[vertexID] = path
	}

	if cfg.Stats != nil {
		*cfg.Stats = stats
	}

	return results, nil
}
