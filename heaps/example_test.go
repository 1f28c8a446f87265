package heaps_test

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/heaps"
)

// ExampleNewPairing shows the addressable contract: elements are added
// under caller-chosen ids, lowered in place, and popped in key order.
func ExampleNewPairing() {
	h := heaps.NewPairing(func(a, b int) bool { return a < b })

	h.Add(100, 0)
	h.Add(200, 1)
	h.Add(300, 2)

	// Element 2 becomes the new minimum.
	h.DecreaseKey(50, 2)

	for h.Size() > 0 {
		key, id := h.PopMin()
		fmt.Printf("key=%d id=%d\n", key, id)
	}

	// Output:
	// key=50 id=2
	// key=100 id=0
	// key=200 id=1
}

// ExampleFactories runs the same workload on every backend.
func ExampleFactories() {
	for _, factory := range heaps.Factories(func(a, b int) bool { return a < b }) {
		h := factory.New()
		h.Add(2, 20)
		h.Add(1, 10)

		key, _ := h.Min()
		fmt.Printf("%s: min=%d\n", factory.Name, key)
	}

	// Output:
	// binary: min=1
	// weak: min=1
	// binomial: min=1
	// pairing: min=1
	// fibonacci: min=1
	// thin: min=1
	// 2-3: min=1
}
