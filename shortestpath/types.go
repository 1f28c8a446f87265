// Package shortestpath defines the Path result type, the DistanceNode
// heap key, configuration options and sentinel errors shared by the
// single-source shortest-path algorithms.
package shortestpath

import (
	"errors"

	"github.com/katalvlaran/lvlheap/graph"
	"github.com/katalvlaran/lvlheap/heaps"
)

// Sentinel errors returned by the shortest-path implementations.
var (
	// ErrNilGraph indicates a nil *graph.Weighted or nil inner graph.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrNilWeights indicates a weighted graph without an edge-weight
	// table.
	ErrNilWeights = errors.New("shortestpath: edge weights are nil")

	// ErrVertexNotFound indicates a source vertex outside the graph.
	ErrVertexNotFound = errors.New("shortestpath: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight, or an
	// additive overflow that produced a negative tentative distance.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight encountered")
)

// Path is a shortest path from the source to one vertex: the total
// distance and the vertex sequence from the source to the target
// inclusive.
type Path struct {
	Distance int64
	Vertices []graph.VertexID
}

// DistanceNode is the heap key used by Dijkstra: a vertex tagged with
// its tentative distance from the source. Ordering considers the
// distance only.
type DistanceNode struct {
	Vertex   graph.VertexID
	Distance int64
}

// LessByDistance orders DistanceNodes by strictly smaller distance.
// Equal distances compare false both ways; the heap backend breaks the
// tie.
func LessByDistance(a, b DistanceNode) bool { return a.Distance < b.Distance }

// HeapFactories returns every heap backend specialized to DistanceNode
// keys, in the stable heaps.Factories order. Handy for running one
// graph against all backends.
func HeapFactories() []heaps.Factory[DistanceNode] {
	return heaps.Factories(LessByDistance)
}

// OpStats counts the heap operations one Dijkstra run performed.
type OpStats struct {
	Adds         int
	Pops         int
	DecreaseKeys int
}

// Options configures a Dijkstra run.
type Options struct {
	// Stats, when non-nil, receives the heap operation counters.
	Stats *OpStats
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// WithOpStats records heap operation counts into stats during the run.
func WithOpStats(stats *OpStats) Option {
	return func(o *Options) {
		o.Stats = stats
	}
}

// DefaultOptions returns the zero configuration: no stats collection.
func DefaultOptions() Options {
	return Options{}
}
