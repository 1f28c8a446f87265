package heaps_test

import (
	"math/rand"
	"testing"
)

// BenchmarkAddPop sorts b.N random keys through each backend.
func BenchmarkAddPop(b *testing.B) {
	for _, factory := range intFactories() {
		b.Run(factory.Name, func(b *testing.B) {
			r := rand.New(rand.NewSource(randomSeed))
			keys := make([]int, b.N)
			for i := range keys {
				keys[i] = r.Int()
			}
			b.ResetTimer()

			h := factory.New()
			for i, key := range keys {
				h.Add(key, i)
			}
			for h.Size() > 0 {
				h.PopMin()
			}
		})
	}
}

// BenchmarkDecreaseKey measures repeated decreases over a resident set.
func BenchmarkDecreaseKey(b *testing.B) {
	const numElements = 1 << 14

	for _, factory := range intFactories() {
		b.Run(factory.Name, func(b *testing.B) {
			r := rand.New(rand.NewSource(randomSeed))
			h := factory.New()
			for i := 0; i < numElements; i++ {
				h.Add(1 + r.Intn(1<<30), i)
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				id := r.Intn(numElements)
				key, _ := h.Lookup(id)
				newKey := key - r.Intn(100)
				if newKey < 0 {
					newKey = 0
				}
				h.DecreaseKey(newKey, id)
			}
		})
	}
}
