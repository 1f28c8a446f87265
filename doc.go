// Package lvlheap is a library of addressable minimum-priority queues
// and the shortest-path machinery built on top of them.
//
// 🚀 What is lvlheap?
//
//	Seven interchangeable min-heap implementations behind one contract,
//	plus a Dijkstra engine that can run on any of them:
//		• Binary heap    — array-backed implicit tree
//		• Weak heap      — array + per-node orientation bits
//		• Binomial heap  — forest of power-of-two trees
//		• Pairing heap   — two-pass melding multiway tree
//		• Fibonacci heap — lazy cascading cuts, O(1) decrease-key
//		• Thin heap      — rank/thickness bookkeeping
//		• 2-3 heap       — per-dimension trunks of paired nodes
//
// ✨ Why choose lvlheap?
//
//   - Addressable – every element stays reachable by id for Lookup and
//     DecreaseKey, the operations Dijkstra-style algorithms live on
//   - Interchangeable – one Interface, seven backends, a named Factory
//     for each; swap the frontier of an algorithm with one argument
//   - Verifiable – every backend ships a Validate that re-checks its
//     structural invariants, and the test suite cross-checks all seven
//     against each other and against a brute-force oracle
//
// Everything is organized under three subpackages and a driver:
//
//	heaps/         — the heap contract and the seven backends
//	graph/         — immutable dense-id digraph, Builder, Properties
//	shortestpath/  — Dijkstra over any heap backend + BFS oracle
//	cmd/heapbench/ — benchmark driver comparing the backends
//
// Quick example:
//
//	h := heaps.NewPairing(func(a, b int) bool { return a < b })
//	h.Add(100, 0)
//	h.Add(200, 1)
//	h.DecreaseKey(50, 1)
//	key, id := h.PopMin() // 50, 1
//
// Thanks for choosing lvlheap! If you spot any issue or have
// suggestions, please open an issue or PR on GitHub.
package lvlheap
