package query

import (
	"math/rand"
	"testing"

	"github.com/aledsdavies/flightql/internal/filter"
	"github.com/aledsdavies/flightql/internal/flight"
)

func benchFlights(n int, r *rand.Rand) []*flight.Flight {
	flights := make([]*flight.Flight, n)
	for i := range flights {
		flights[i] = &flight.Flight{
			Origin:  []string{"AAA", "BBB", "CCC", "DDD"}[r.Intn(4)],
			Price:   float64(r.Intn(2000)),
			Seats:   int64(r.Intn(300)),
			DepTime: 0,
			ArrTime: int64(r.Intn(50_000)),
			Stops:   int64(r.Intn(4)),
		}
	}
	return flights
}

// BenchmarkEngineRun_Indexable mirrors BenchmarkTreeRangeQuery
// (internal/index/bench_test.go): a single indexable leaf narrows via
// the tree before the exact filter and sort pass run.
func BenchmarkEngineRun_Indexable(b *testing.B) {
	sizes := map[string]int{"small": 1_000, "large": 100_000}

	for name, n := range sizes {
		b.Run(name, func(b *testing.B) {
			r := rand.New(rand.NewSource(1))
			flights := benchFlights(n, r)
			e := NewEngine(flights)
			expr, err := filter.Parse("org==AAA && sea>=10")
			if err != nil {
				b.Fatal(err)
			}
			q := &Query{MaxResults: 50, SortCriteria: "p", Filter: expr}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = e.Run(q)
			}
		})
	}
}

// BenchmarkEngineRun_FullScan forces the no-indexable-leaf path (an Or at
// the top) so the planner falls back to scanning every flight.
func BenchmarkEngineRun_FullScan(b *testing.B) {
	sizes := map[string]int{"small": 1_000, "large": 100_000}

	for name, n := range sizes {
		b.Run(name, func(b *testing.B) {
			r := rand.New(rand.NewSource(1))
			flights := benchFlights(n, r)
			e := NewEngine(flights)
			expr, err := filter.Parse("org==AAA || dst==BBB")
			if err != nil {
				b.Fatal(err)
			}
			q := &Query{MaxResults: 50, SortCriteria: "pds", Filter: expr}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = e.Run(q)
			}
		})
	}
}
