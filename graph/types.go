// Package graph declares the Vertex, Edge and Graph types, the Builder,
// and the sentinel errors shared by the package.
package graph

import "errors"

// Sentinel errors for graph construction and validation.
var (
	// ErrVertexNotFound indicates an edge endpoint that was never added.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrBuilderSealed indicates mutation of a Builder after Build.
	ErrBuilderSealed = errors.New("graph: builder already built")

	// ErrInvalidID indicates a stored identifier outside the dense range;
	// returned by Validate on a corrupted graph.
	ErrInvalidID = errors.New("graph: identifier out of range")
)

// VertexID identifies a vertex. IDs are dense: they range over
// [0, NumVertices) in insertion order.
type VertexID int

// EdgeID identifies an edge. IDs are dense: they range over
// [0, NumEdges) in insertion order.
type EdgeID int

// Edge is a directed edge relative to its source vertex. The weight, if
// any, lives in a Properties table keyed by ID.
type Edge struct {
	// ID is unique across the whole graph.
	ID EdgeID

	// To is the destination vertex.
	To VertexID
}

// Vertex is a node together with its outgoing edges, in insertion
// order.
type Vertex struct {
	ID    VertexID
	Edges []Edge
}

// Graph is an immutable directed graph. Use a Builder to construct one;
// after Build the graph never changes and is safe for concurrent reads.
type Graph struct {
	name     string
	vertices []Vertex
	numEdges int
}
