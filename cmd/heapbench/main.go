// Command heapbench exercises the heap backends and the shortest-path
// algorithms against random inputs and reports averaged wall times.
//
// Two modes:
//
//	heapbench --mode=heap --heap=pairing --elements=100000
//	heapbench --mode=dijkstra --heap=all --vertices=1000 --degree=20
//
// Backend names follow the heaps factory names; "all" runs every
// backend, and in dijkstra mode "bfs" selects the label-correcting
// baseline. Unknown names fail fatally.
package main

import (
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlheap/graph"
	"github.com/katalvlaran/lvlheap/heaps"
	"github.com/katalvlaran/lvlheap/internal/perf"
	"github.com/katalvlaran/lvlheap/shortestpath"
)

func main() {
	var (
		mode        = pflag.String("mode", "dijkstra", "benchmark mode: heap or dijkstra")
		heapName    = pflag.String("heap", "all", "heap backend name, or all")
		elements    = pflag.Int("elements", 100000, "heap mode: number of elements")
		operations  = pflag.Int("operations", 100000, "heap mode: number of decrease-key operations")
		numVertices = pflag.Int("vertices", 1000, "dijkstra mode: number of vertices")
		degree      = pflag.Int("degree", 20, "dijkstra mode: out-edges per vertex")
		weightRange = pflag.Int64("weight-range", 100000, "dijkstra mode: weights drawn from [0, range)")
		runs        = pflag.Int("runs", 5, "runs to average over")
		seed        = pflag.Int64("seed", 12346789, "random seed")
		verbose     = pflag.Bool("verbose", false, "dump final heap state in heap mode")
	)
	pflag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch *mode {
	case "heap":
		runHeapBattery(*heapName, *elements, *operations, *runs, *seed, *verbose)
	case "dijkstra":
		runDijkstraBattery(*heapName, *numVertices, *degree, *weightRange, *runs, *seed)
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode, want heap or dijkstra")
	}
}

// selectFactories resolves a backend name (or "all") against the
// available factories, failing fatally on unknown names.
func selectFactories[K any](name string, available []heaps.Factory[K]) []heaps.Factory[K] {
	if name == "all" {
		return available
	}
	for _, factory := range available {
		if factory.Name == name {
			return []heaps.Factory[K]{factory}
		}
	}

	names := lo.Map(available, func(f heaps.Factory[K], _ int) string { return f.Name })
	log.Fatal().
		Str("heap", name).
		Str("available", strings.Join(names, ", ")).
		Msg("unknown heap backend")

	return nil
}

// runHeapBattery times Add, PopMin, Add+PopMin (sorting) and
// DecreaseKey sweeps on each selected backend.
func runHeapBattery(heapName string, elements, operations, runs int, seed int64, verbose bool) {
	factories := selectFactories(heapName, heaps.Factories(func(a, b int) bool { return a < b }))

	for _, factory := range factories {
		log.Info().
			Str("heap", factory.Name).
			Str("elements", humanize.Comma(int64(elements))).
			Msg("running heap battery")

		for _, battery := range []struct {
			name string
			run  func(r *rand.Rand, h heaps.Interface[int], timer *perf.Timer)
		}{
			{"Add", func(r *rand.Rand, h heaps.Interface[int], timer *perf.Timer) {
				timer.Start()
				for i := 0; i < elements; i++ {
					h.Add(r.Int(), i)
				}
				timer.Stop()
			}},
			{"PopMin", func(r *rand.Rand, h heaps.Interface[int], timer *perf.Timer) {
				for i := 0; i < elements; i++ {
					h.Add(r.Int(), i)
				}
				timer.Start()
				for i := 0; i < elements; i++ {
					h.PopMin()
				}
				timer.Stop()
			}},
			{"AddAndPopMin", func(r *rand.Rand, h heaps.Interface[int], timer *perf.Timer) {
				timer.Start()
				for i := 0; i < elements; i++ {
					h.Add(r.Int(), i)
				}
				for i := 0; i < elements; i++ {
					h.PopMin()
				}
				timer.Stop()
			}},
			{"DecreaseKey", func(r *rand.Rand, h heaps.Interface[int], timer *perf.Timer) {
				for i := 0; i < elements; i++ {
					h.Add(r.Int(), i)
				}
				timer.Start()
				for i := 0; i < operations; i++ {
					id := r.Intn(elements)
					key, _ := h.Lookup(id)
					newKey := key - r.Intn(100)
					if newKey < 0 {
						newKey = 0
					}
					h.DecreaseKey(newKey, id)
				}
				timer.Stop()
			}},
		} {
			var timer perf.Timer
			timer.SetReport(battery.name)
			r := rand.New(rand.NewSource(seed))

			var last heaps.Interface[int]
			for run := 0; run < runs; run++ {
				last = factory.New()
				battery.run(r, last, &timer)
			}

			log.Info().
				Str("heap", factory.Name).
				Str("battery", timer.Report()).
				Dur("avg", timer.Total()/max(1, time.Duration(runs))).
				Msg("battery done")

			if verbose && last != nil && last.Size() > 0 {
				last.Dump(os.Stderr, factory.Name+"/"+battery.name)
			}
		}
	}
}

// runDijkstraBattery builds one random digraph and times each selected
// backend over it; the BFS baseline runs when heapName is "bfs" or "all".
func runDijkstraBattery(heapName string, numVertices, degree int, weightRange int64, runs int, seed int64) {
	wg := buildRandomWeighted(numVertices, degree, weightRange, seed)
	log.Info().
		Str("vertices", humanize.Comma(int64(wg.Graph.NumVertices()))).
		Str("edges", humanize.Comma(int64(wg.Graph.NumEdges()))).
		Msg("built random digraph")

	if heapName == "bfs" || heapName == "all" {
		var timer perf.Timer
		for run := 0; run < runs; run++ {
			timer.Start()
			if _, err := shortestpath.BFS(wg, 0); err != nil {
				log.Fatal().Err(err).Msg("bfs failed")
			}
			timer.Stop()
		}
		log.Info().
			Str("algo", "bfs").
			Dur("avg", timer.Total()/max(1, time.Duration(runs))).
			Msg("run done")

		if heapName == "bfs" {
			return
		}
	}

	factories := selectFactories(heapName, shortestpath.HeapFactories())
	for _, factory := range factories {
		var timer perf.Timer
		var stats shortestpath.OpStats
		for run := 0; run < runs; run++ {
			timer.Start()
			_, err := shortestpath.Dijkstra(wg, 0, factory, shortestpath.WithOpStats(&stats))
			timer.Stop()
			if err != nil {
				log.Fatal().Err(err).Str("heap", factory.Name).Msg("dijkstra failed")
			}
		}

		log.Info().
			Str("algo", "dijkstra").
			Str("heap", factory.Name).
			Dur("avg", timer.Total()/max(1, time.Duration(runs))).
			Str("adds", humanize.Comma(int64(stats.Adds))).
			Str("pops", humanize.Comma(int64(stats.Pops))).
			Str("decreases", humanize.Comma(int64(stats.DecreaseKeys))).
			Msg("run done")
	}
}

// buildRandomWeighted assembles a digraph with degree out-edges per
// vertex and uniform weights in [0, weightRange).
func buildRandomWeighted(numVertices, degree int, weightRange, seed int64) *graph.Weighted {
	r := rand.New(rand.NewSource(seed))
	b := graph.NewBuilder("random")
	weights := graph.NewProperties[int64](0)

	vertices := make([]graph.VertexID, numVertices)
	for i := range vertices {
		vertices[i] = b.AddVertex()
	}

	for _, from := range vertices {
		for j := 0; j < degree; j++ {
			edge, err := b.AddEdge(from, vertices[r.Intn(numVertices)])
			if err != nil {
				log.Fatal().Err(err).Msg("add edge failed")
			}
			weights.Set(int(edge), r.Int63n(weightRange))
		}
	}

	g, err := b.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("build failed")
	}
	if err := g.Validate(); err != nil {
		log.Fatal().Err(err).Msg("graph validation failed")
	}

	return graph.NewWeighted(g, weights)
}
