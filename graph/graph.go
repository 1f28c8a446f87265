package graph

import (
	"fmt"
	"io"
)

// Name returns the diagnostic label given to the Builder.
func (g *Graph) Name() string { return g.name }

// NumVertices returns the total number of vertices.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumEdges returns the total number of edges.
func (g *Graph) NumEdges() int { return g.numEdges }

// Vertices returns all vertices in id order. The slice is shared with
// the graph and must not be mutated.
func (g *Graph) Vertices() []Vertex { return g.vertices }

// Vertex returns the vertex with the given id. The pointer references
// the graph's own storage and must be treated as read-only.
func (g *Graph) Vertex(id VertexID) *Vertex { return &g.vertices[id] }

// HasVertex reports whether id is a valid vertex identifier.
func (g *Graph) HasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// Validate re-checks the dense-identifier invariants: every vertex id
// is in range and matches its position, and every edge id is in range.
func (g *Graph) Validate() error {
	for i, vertex := range g.vertices {
		if int(vertex.ID) != i {
			return fmt.Errorf("%w: vertex %d stored at position %d", ErrInvalidID, vertex.ID, i)
		}

		for _, edge := range vertex.Edges {
			if int(edge.ID) >= g.numEdges {
				return fmt.Errorf("%w: edge %d with %d edges total", ErrInvalidID, edge.ID, g.numEdges)
			}
			if !g.HasVertex(edge.To) {
				return fmt.Errorf("%w: edge %d points at vertex %d", ErrInvalidID, edge.ID, edge.To)
			}
		}
	}

	return nil
}

// Builder assembles a Graph. It is single-use: after Build, further
// mutation fails with ErrBuilderSealed.
type Builder struct {
	name string

	// edges[v] collects the outgoing edges of vertex v while building.
	edges [][]Edge

	nextEdgeID int
	sealed     bool
}

// NewBuilder returns an empty Builder. The name labels the graph in
// diagnostics only.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// AddVertex appends a vertex and returns its dense id. Calling it on a
// sealed builder is a programmer error and panics.
func (b *Builder) AddVertex() VertexID {
	if b.sealed {
		panic(ErrBuilderSealed.Error())
	}
	id := VertexID(len(b.edges))
	b.edges = append(b.edges, nil)

	return id
}

// AddEdge appends a directed edge from → to and returns its dense id.
// Both endpoints must have been added already.
func (b *Builder) AddEdge(from, to VertexID) (EdgeID, error) {
	if b.sealed {
		return 0, ErrBuilderSealed
	}
	if int(from) >= len(b.edges) || from < 0 {
		return 0, fmt.Errorf("%w: from vertex %d", ErrVertexNotFound, from)
	}
	if int(to) >= len(b.edges) || to < 0 {
		return 0, fmt.Errorf("%w: to vertex %d", ErrVertexNotFound, to)
	}

	id := EdgeID(b.nextEdgeID)
	b.nextEdgeID++
	b.edges[from] = append(b.edges[from], Edge{ID: id, To: to})

	return id, nil
}

// Build seals the builder and returns the finished immutable Graph.
// A second Build fails with ErrBuilderSealed.
func (b *Builder) Build() (*Graph, error) {
	if b.sealed {
		return nil, ErrBuilderSealed
	}
	b.sealed = true

	vertices := make([]Vertex, len(b.edges))
	for i, edges := range b.edges {
		vertices[i] = Vertex{ID: VertexID(i), Edges: edges}
	}

	return &Graph{
		name:     b.name,
		vertices: vertices,
		numEdges: b.nextEdgeID,
	}, nil
}

// Weighted bundles a Graph with the edge-weight table the shortest-path
// algorithms read.
type Weighted struct {
	Graph *Graph

	// EdgeWeights maps EdgeID → weight.
	EdgeWeights *Properties[int64]
}

// NewWeighted pairs a graph with its edge weights.
func NewWeighted(g *Graph, edgeWeights *Properties[int64]) *Weighted {
	return &Weighted{Graph: g, EdgeWeights: edgeWeights}
}

// Dump writes every vertex with its outgoing weighted edges. Debugging
// aid only.
func (wg *Weighted) Dump(w io.Writer) {
	fmt.Fprintf(w, "Graph(%s)\n", wg.Graph.Name())
	for _, vertex := range wg.Graph.Vertices() {
		fmt.Fprintf(w, "Vertex %d\n", vertex.ID)
		for _, edge := range vertex.Edges {
			fmt.Fprintf(w, " %d -> %d (%d)\n", vertex.ID, edge.To, wg.EdgeWeights.Get(int(edge.ID)))
		}
	}
}
