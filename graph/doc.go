// Package graph provides the immutable directed graph consumed by the
// shortest-path algorithms, together with its one-shot Builder and the
// Properties side tables that carry per-edge or per-vertex values.
//
// Identifiers are dense: the Builder assigns VertexID and EdgeID values
// sequentially from zero in insertion order, so both double as slice
// indices. A built Graph never changes; algorithms may share it freely
// across goroutines for reading.
//
// Weights do not live on the edges themselves. A Properties[T] table
// keyed by EdgeID carries them, and Weighted bundles a Graph with its
// edge-weight table. Keeping values in side tables lets one topology
// carry any number of weight sets.
//
// Typical construction:
//
//	b := graph.NewBuilder("example")
//	weights := graph.NewProperties[int64](0)
//	u := b.AddVertex()
//	v := b.AddVertex()
//	e, _ := b.AddEdge(u, v)
//	weights.Set(int(e), 7)
//	g, _ := b.Build()
//	wg := graph.NewWeighted(g, weights)
package graph
