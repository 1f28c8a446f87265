// Package heaps provides seven interchangeable addressable min-heap
// implementations behind a single contract: Binary, Weak, Binomial,
// Pairing, Fibonacci, Thin and 2-3 heaps.
//
// Overview:
//
//   - Every heap stores (key, id) elements: the key drives the ordering,
//     the id is a caller-assigned, heap-unique int handle.
//   - Elements stay addressable by id for their whole lifetime:
//     Lookup(id) returns the current key, DecreaseKey(newKey, id) lowers it
//     in place. This is what makes the heaps usable as the priority
//     queue inside Dijkstra-style algorithms.
//   - Ordering is supplied by the caller as a strict less-than
//     Less[K] func(a, b K) bool; keys need no methods of their own.
//
// Choosing a backend:
//
//   - Binary / Weak: array-backed, cache-friendly, O(log n) everywhere.
//     The safe default for moderate sizes.
//   - Binomial: O(log n) worst case with a forest of power-of-two trees.
//   - Pairing: simple pointer structure, O(1) DecreaseKey amortized,
//     excellent in practice.
//   - Fibonacci / Thin / 2-3: O(1) amortized DecreaseKey with the
//     textbook amortized bounds; heavier constants per node.
//
// All backends expose the same Interface, so callers can be written once
// and benchmarked against each structure via the Factory values returned
// by Factories.
//
// Error handling:
//
//   - Precondition violations (duplicate id on Add, DecreaseKey on an
//     absent id or with a strictly larger key, Min/PopMin on an empty
//     heap) are programmer errors and panic with a "heaps:" diagnostic.
//   - Lookup on an absent id is not an error: it returns (zero, false).
//   - Validate re-checks every structural invariant and returns a
//     descriptive error on the first violation. It is meant for tests;
//     it walks the entire structure and is far too slow for hot paths.
//
// Thread safety:
//
//   - None. A heap instance must be confined to one goroutine or guarded
//     by external synchronization at whole-instance granularity.
//
// Non-goals: max-heaps, melding two heap instances, increase-key.
package heaps
