// Package shortestpath_test validates Dijkstra against fixed graphs,
// against every heap backend, and against the BFS oracle on random
// digraphs.
package shortestpath_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlheap/graph"
	"github.com/katalvlaran/lvlheap/shortestpath"
)

const randomSeed = 12346789

// buildSimpleWeighted builds the four-vertex diamond:
//
//	0→1 (5), 0→2 (3), 1→3 (10), 2→3 (20)
//
// Shortest paths from 0: 0→(0,[0]), 1→(5,[0,1]), 2→(3,[0,2]),
// 3→(15,[0,1,3]).
func buildSimpleWeighted(t *testing.T) *graph.Weighted {
	t.Helper()
	b := graph.NewBuilder("simple")
	weights := graph.NewProperties[int64](0)

	v0 := b.AddVertex()
	v1 := b.AddVertex()
	v2 := b.AddVertex()
	v3 := b.AddVertex()

	for _, edge := range []struct {
		from, to graph.VertexID
		weight   int64
	}{
		{v0, v1, 5},
		{v0, v2, 3},
		{v1, v3, 10},
		{v2, v3, 20},
	} {
		id, err := b.AddEdge(edge.from, edge.to)
		require.NoError(t, err)
		weights.Set(int(id), edge.weight)
	}

	g, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	return graph.NewWeighted(g, weights)
}

// buildRandomWeighted builds a digraph with fixed out-degree and
// uniform weights, seeded deterministically.
func buildRandomWeighted(t *testing.T, numVertices, degree int, weightRange, seed int64) *graph.Weighted {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	b := graph.NewBuilder("random")
	weights := graph.NewProperties[int64](0)

	vertices := make([]graph.VertexID, numVertices)
	for i := range vertices {
		vertices[i] = b.AddVertex()
	}

	for _, from := range vertices {
		for j := 0; j < degree; j++ {
			id, err := b.AddEdge(from, vertices[r.Intn(numVertices)])
			require.NoError(t, err)
			weights.Set(int(id), r.Int63n(weightRange))
		}
	}

	g, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	return graph.NewWeighted(g, weights)
}

// checkPathConsistency verifies that every returned Path starts at the
// source, ends at its vertex, follows existing edges, and that its
// distance equals the sum of the traversed edge weights.
func checkPathConsistency(t *testing.T, wg *graph.Weighted, source graph.VertexID, results map[graph.VertexID]shortestpath.Path) {
	t.Helper()
	for vertexID, path := range results {
		require.NotEmpty(t, path.Vertices)
		require.Equal(t, source, path.Vertices[0])
		require.Equal(t, vertexID, path.Vertices[len(path.Vertices)-1])

		var total int64
		for i := 0; i+1 < len(path.Vertices); i++ {
			from, to := path.Vertices[i], path.Vertices[i+1]

			// Parallel edges may exist; a shortest path always settles
			// on the cheapest one between consecutive vertices.
			var best int64
			found := false
			for _, edge := range wg.Graph.Vertex(from).Edges {
				if edge.To != to {
					continue
				}
				if weight := wg.EdgeWeights.Get(int(edge.ID)); !found || weight < best {
					best = weight
				}
				found = true
			}
			require.True(t, found, "path for %d uses missing edge %d→%d", vertexID, from, to)
			total += best
		}
		require.Equal(t, path.Distance, total, "path distance for %d does not match its edges", vertexID)
	}
}

func TestDijkstra_SimpleGraph(t *testing.T) {
	wg := buildSimpleWeighted(t)

	want := map[graph.VertexID]shortestpath.Path{
		0: {Distance: 0, Vertices: []graph.VertexID{0}},
		1: {Distance: 5, Vertices: []graph.VertexID{0, 1}},
		2: {Distance: 3, Vertices: []graph.VertexID{0, 2}},
		3: {Distance: 15, Vertices: []graph.VertexID{0, 1, 3}},
	}

	for _, factory := range shortestpath.HeapFactories() {
		t.Run(factory.Name, func(t *testing.T) {
			got, err := shortestpath.Dijkstra(wg, 0, factory)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDijkstra_UnreachableVerticesOmitted(t *testing.T) {
	b := graph.NewBuilder("islands")
	v0 := b.AddVertex()
	v1 := b.AddVertex()
	b.AddVertex() // v2, no edges at all
	id, err := b.AddEdge(v0, v1)
	require.NoError(t, err)

	weights := graph.NewProperties[int64](0)
	weights.Set(int(id), 4)
	g, err := b.Build()
	require.NoError(t, err)
	wg := graph.NewWeighted(g, weights)

	for _, factory := range shortestpath.HeapFactories() {
		t.Run(factory.Name, func(t *testing.T) {
			got, err := shortestpath.Dijkstra(wg, v0, factory)
			require.NoError(t, err)

			assert.Len(t, got, 2)
			assert.Contains(t, got, v0)
			assert.Contains(t, got, v1)
		})
	}
}

func TestDijkstra_Validation(t *testing.T) {
	factory := shortestpath.HeapFactories()[0]

	_, err := shortestpath.Dijkstra(nil, 0, factory)
	require.ErrorIs(t, err, shortestpath.ErrNilGraph)

	b := graph.NewBuilder("tiny")
	b.AddVertex()
	g, err := b.Build()
	require.NoError(t, err)

	_, err = shortestpath.Dijkstra(graph.NewWeighted(g, nil), 0, factory)
	require.ErrorIs(t, err, shortestpath.ErrNilWeights)

	wg := graph.NewWeighted(g, graph.NewProperties[int64](0))
	_, err = shortestpath.Dijkstra(wg, 5, factory)
	require.ErrorIs(t, err, shortestpath.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeightRejected(t *testing.T) {
	b := graph.NewBuilder("negative")
	u := b.AddVertex()
	v := b.AddVertex()
	id, err := b.AddEdge(u, v)
	require.NoError(t, err)

	weights := graph.NewProperties[int64](0)
	weights.Set(int(id), -5)
	g, err := b.Build()
	require.NoError(t, err)
	wg := graph.NewWeighted(g, weights)

	for _, factory := range shortestpath.HeapFactories() {
		_, err := shortestpath.Dijkstra(wg, u, factory)
		require.ErrorIs(t, err, shortestpath.ErrNegativeWeight)
	}
}

func TestDijkstra_SingleVertex(t *testing.T) {
	b := graph.NewBuilder("lonely")
	v := b.AddVertex()
	g, err := b.Build()
	require.NoError(t, err)
	wg := graph.NewWeighted(g, graph.NewProperties[int64](0))

	for _, factory := range shortestpath.HeapFactories() {
		got, err := shortestpath.Dijkstra(wg, v, factory)
		require.NoError(t, err)
		assert.Equal(t, map[graph.VertexID]shortestpath.Path{
			v: {Distance: 0, Vertices: []graph.VertexID{v}},
		}, got)
	}
}

func TestDijkstra_OpStats(t *testing.T) {
	wg := buildSimpleWeighted(t)

	var stats shortestpath.OpStats
	_, err := shortestpath.Dijkstra(wg, 0, shortestpath.HeapFactories()[0], shortestpath.WithOpStats(&stats))
	require.NoError(t, err)

	// One add per discovered vertex, one pop per extraction, and a
	// single decrease when 0→1→3 (15) improves on 0→2→3 (23).
	assert.Equal(t, 4, stats.Adds)
	assert.Equal(t, 4, stats.Pops)
	assert.Equal(t, 1, stats.DecreaseKeys)
}

func TestBFS_SimpleGraph(t *testing.T) {
	wg := buildSimpleWeighted(t)

	got, err := shortestpath.BFS(wg, 0)
	require.NoError(t, err)

	assert.Equal(t, map[graph.VertexID]shortestpath.Path{
		0: {Distance: 0, Vertices: []graph.VertexID{0}},
		1: {Distance: 5, Vertices: []graph.VertexID{0, 1}},
		2: {Distance: 3, Vertices: []graph.VertexID{0, 2}},
		3: {Distance: 15, Vertices: []graph.VertexID{0, 1, 3}},
	}, got)
}

func TestBFS_Validation(t *testing.T) {
	_, err := shortestpath.BFS(nil, 0)
	require.ErrorIs(t, err, shortestpath.ErrNilGraph)

	b := graph.NewBuilder("tiny")
	b.AddVertex()
	g, err := b.Build()
	require.NoError(t, err)

	_, err = shortestpath.BFS(graph.NewWeighted(g, nil), 0)
	require.ErrorIs(t, err, shortestpath.ErrNilWeights)

	_, err = shortestpath.BFS(graph.NewWeighted(g, graph.NewProperties[int64](0)), 3)
	require.ErrorIs(t, err, shortestpath.ErrVertexNotFound)
}

// TestDijkstra_RandomAgainstOracle runs every backend and the BFS
// oracle over a 1000-vertex random digraph: the distance maps must
// agree exactly, and every backend's paths must be internally
// consistent. Equal-distance graphs admit several shortest paths, so
// vertex sequences are checked for validity rather than equality.
func TestDijkstra_RandomAgainstOracle(t *testing.T) {
	const (
		numVertices = 1000
		degree      = 20
		weightRange = 100000
	)

	wg := buildRandomWeighted(t, numVertices, degree, weightRange, randomSeed)

	oracle, err := shortestpath.BFS(wg, 0)
	require.NoError(t, err)
	checkPathConsistency(t, wg, 0, oracle)

	oracleDistances := make(map[graph.VertexID]int64, len(oracle))
	for vertexID, path := range oracle {
		oracleDistances[vertexID] = path.Distance
	}

	for _, factory := range shortestpath.HeapFactories() {
		t.Run(factory.Name, func(t *testing.T) {
			results, err := shortestpath.Dijkstra(wg, 0, factory)
			require.NoError(t, err)
			checkPathConsistency(t, wg, 0, results)

			distances := make(map[graph.VertexID]int64, len(results))
			for vertexID, path := range results {
				distances[vertexID] = path.Distance
			}
			require.Equal(t, oracleDistances, distances)
		})
	}
}

// TestDijkstra_BackendsAgree pits every backend against the first one
// over several seeds and sizes; the distance maps must match exactly.
func TestDijkstra_BackendsAgree(t *testing.T) {
	factories := shortestpath.HeapFactories()

	for _, tc := range []struct {
		numVertices, degree int
		weightRange         int64
	}{
		{50, 3, 10},
		{200, 5, 1000},
		{400, 8, 100000},
	} {
		name := fmt.Sprintf("v%d_d%d", tc.numVertices, tc.degree)
		t.Run(name, func(t *testing.T) {
			wg := buildRandomWeighted(t, tc.numVertices, tc.degree, tc.weightRange, randomSeed+int64(tc.numVertices))

			reference, err := shortestpath.Dijkstra(wg, 0, factories[0])
			require.NoError(t, err)

			refDistances := make(map[graph.VertexID]int64, len(reference))
			for vertexID, path := range reference {
				refDistances[vertexID] = path.Distance
			}

			for _, factory := range factories[1:] {
				results, err := shortestpath.Dijkstra(wg, 0, factory)
				require.NoError(t, err)
				checkPathConsistency(t, wg, 0, results)

				distances := make(map[graph.VertexID]int64, len(results))
				for vertexID, path := range results {
					distances[vertexID] = path.Distance
				}
				require.Equal(t, refDistances, distances, "%s diverges from %s", factory.Name, factories[0].Name)
			}
		})
	}
}
