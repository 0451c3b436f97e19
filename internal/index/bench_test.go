package index

import (
	"math/rand"
	"testing"

	"github.com/aledsdavies/flightql/internal/flight"
)

// BenchmarkTreeInsert mirrors the teacher's BenchmarkParserScaling shape
// (runtime/parser/benchmark_test.go): one scenario per data size, timer
// reset after setup-independent work, allocations reported.
func BenchmarkTreeInsert(b *testing.B) {
	sizes := map[string]int{
		"small":  100,
		"medium": 1_000,
		"large":  10_000,
	}

	for name, n := range sizes {
		b.Run(name, func(b *testing.B) {
			r := rand.New(rand.NewSource(1))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				tr := New(lessInt64)
				for j := 0; j < n; j++ {
					key := int64(r.Intn(n))
					tr.Insert(key, &flight.Flight{Price: float64(key)})
				}
			}
		})
	}
}

func BenchmarkTreeRangeQuery(b *testing.B) {
	tr := New(lessInt64)
	r := rand.New(rand.NewSource(1))
	for j := 0; j < 10_000; j++ {
		key := int64(r.Intn(10_000))
		tr.Insert(key, &flight.Flight{Price: float64(key)})
	}

	low, high := int64(2_000), int64(8_000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.RangeQuery(&low, true, &high, true)
	}
}
