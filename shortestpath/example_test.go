package shortestpath_test

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/graph"
	"github.com/katalvlaran/lvlheap/shortestpath"
)

// ExampleDijkstra builds a small weighted digraph and resolves the
// shortest paths from vertex 0 with a Fibonacci-heap frontier.
func ExampleDijkstra() {
	b := graph.NewBuilder("city")
	weights := graph.NewProperties[int64](0)

	depot := b.AddVertex()
	market := b.AddVertex()
	harbor := b.AddVertex()

	road, _ := b.AddEdge(depot, market)
	weights.Set(int(road), 4)
	road, _ = b.AddEdge(market, harbor)
	weights.Set(int(road), 2)
	road, _ = b.AddEdge(depot, harbor)
	weights.Set(int(road), 9)

	g, _ := b.Build()
	wg := graph.NewWeighted(g, weights)

	factories := shortestpath.HeapFactories()
	results, err := shortestpath.Dijkstra(wg, depot, factories[4]) // fibonacci
	if err != nil {
		fmt.Println(err)
		return
	}

	path := results[harbor]
	fmt.Printf("distance=%d via=%v\n", path.Distance, path.Vertices)

	// Output:
	// distance=6 via=[0 1 2]
}
