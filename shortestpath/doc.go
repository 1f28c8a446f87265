// Package shortestpath provides single-source shortest-path algorithms
// over the weighted directed graphs of package graph.
//
// Overview:
//
//   - Dijkstra computes exact shortest paths on non-negative weights,
//     ordering its frontier with any heap backend from package heaps.
//     The backend arrives as a heaps.Factory[DistanceNode]; the
//     algorithm itself never branches on which one it got.
//   - BFS is a label-correcting queue search kept as a slow, obviously
//     correct oracle for tests and benchmarks.
//
// Decrease versus reinsert:
//
//	Whenever a frontier vertex gets a shorter tentative distance,
//	Dijkstra calls DecreaseKey on the existing heap entry rather than
//	inserting a duplicate. With Fibonacci, pairing, thin or 2-3 heaps
//	that operation is O(1) amortized; with binary, weak or binomial
//	heaps it costs O(log n). The trade-off belongs entirely to the
//	injected backend.
//
// Results:
//
//	Both algorithms return map[graph.VertexID]Path holding only the
//	vertices reachable from the source. Path.Vertices runs from the
//	source to the target inclusive; the source maps to {0, [source]}.
//
// Error handling (sentinel):
//
//   - ErrNilGraph        if the weighted graph or its inner graph is nil.
//   - ErrNilWeights      if the edge-weight table is nil.
//   - ErrVertexNotFound  if the source vertex does not exist.
//   - ErrNegativeWeight  if any edge weight is negative (O(E) pre-scan)
//     or a tentative distance overflows during relaxation.
//
// Thread safety:
//
//	A run only reads the graph, so concurrent runs over one graph are
//	fine; each run owns its heap instance exclusively.
package shortestpath
