package graph_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlheap/graph"
)

func TestBuilder_DenseIdentifiers(t *testing.T) {
	b := graph.NewBuilder("dense")

	// Vertex and edge ids are assigned sequentially from zero.
	for want := 0; want < 5; want++ {
		assert.Equal(t, graph.VertexID(want), b.AddVertex())
	}
	for want := 0; want < 3; want++ {
		id, err := b.AddEdge(graph.VertexID(want), graph.VertexID(want+1))
		require.NoError(t, err)
		assert.Equal(t, graph.EdgeID(want), id)
	}

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "dense", g.Name())
	assert.Equal(t, 5, g.NumVertices())
	assert.Equal(t, 3, g.NumEdges())
	require.NoError(t, g.Validate())
}

func TestBuilder_EdgeEndpointsMustExist(t *testing.T) {
	b := graph.NewBuilder("bounds")
	b.AddVertex()

	_, err := b.AddEdge(0, 7)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)

	_, err = b.AddEdge(3, 0)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestBuilder_SealedAfterBuild(t *testing.T) {
	b := graph.NewBuilder("sealed")
	u := b.AddVertex()
	v := b.AddVertex()
	_, err := b.AddEdge(u, v)
	require.NoError(t, err)

	_, err = b.Build()
	require.NoError(t, err)

	_, err = b.AddEdge(u, v)
	require.ErrorIs(t, err, graph.ErrBuilderSealed)

	_, err = b.Build()
	require.ErrorIs(t, err, graph.ErrBuilderSealed)
}

func TestGraph_VertexAccess(t *testing.T) {
	b := graph.NewBuilder("access")
	u := b.AddVertex()
	v := b.AddVertex()
	e, err := b.AddEdge(u, v)
	require.NoError(t, err)

	g, err := b.Build()
	require.NoError(t, err)

	assert.True(t, g.HasVertex(u))
	assert.True(t, g.HasVertex(v))
	assert.False(t, g.HasVertex(2))
	assert.False(t, g.HasVertex(-1))

	vertex := g.Vertex(u)
	require.Len(t, vertex.Edges, 1)
	assert.Equal(t, e, vertex.Edges[0].ID)
	assert.Equal(t, v, vertex.Edges[0].To)

	assert.Empty(t, g.Vertex(v).Edges)
}

func TestProperties_DefaultForUnset(t *testing.T) {
	p := graph.NewProperties[int64](-1)

	assert.Equal(t, int64(-1), p.Get(0))
	assert.Equal(t, int64(-1), p.Get(100))

	p.Set(3, 42)
	assert.Equal(t, int64(42), p.Get(3))
	// Implicitly grown slots keep the default.
	assert.Equal(t, int64(-1), p.Get(2))
	assert.Equal(t, int64(-1), p.Get(4))

	p.Set(0, 7)
	assert.Equal(t, int64(7), p.Get(0))
}

func TestWeighted_Dump(t *testing.T) {
	b := graph.NewBuilder("dump")
	u := b.AddVertex()
	v := b.AddVertex()
	e, err := b.AddEdge(u, v)
	require.NoError(t, err)

	weights := graph.NewProperties[int64](0)
	weights.Set(int(e), 9)

	g, err := b.Build()
	require.NoError(t, err)
	wg := graph.NewWeighted(g, weights)

	var buf bytes.Buffer
	wg.Dump(&buf)
	assert.Contains(t, buf.String(), "Graph(dump)")
	assert.Contains(t, buf.String(), "0 -> 1 (9)")
}
