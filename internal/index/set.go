package index

import "github.com/aledsdavies/flightql/internal/flight"

// Set holds the eight secondary indexes built during load, one per
// recognized field (spec §4.E). Indexes are process-global to the engine
// and read-only after Build; they are never rebuilt per query.
type Set struct {
	Org *Tree[string]
	Dst *Tree[string]
	Prc *Tree[float64]
	Dur *Tree[int64]
	Sto *Tree[int64]
	Sea *Tree[int64]
	Dep *Tree[int64]
	Arr *Tree[int64]
}

func lessString(a, b string) bool   { return a < b }
func lessFloat64(a, b float64) bool { return a < b }
func lessInt64(a, b int64) bool     { return a < b }

// Build constructs all eight indexes over flights in a single pass.
func Build(flights []*flight.Flight) *Set {
	s := &Set{
		Org: New(lessString),
		Dst: New(lessString),
		Prc: New(lessFloat64),
		Dur: New(lessInt64),
		Sto: New(lessInt64),
		Sea: New(lessInt64),
		Dep: New(lessInt64),
		Arr: New(lessInt64),
	}

	for _, f := range flights {
		s.Org.Insert(f.Origin, f)
		s.Dst.Insert(f.Destination, f)
		s.Prc.Insert(f.Price, f)
		s.Dur.Insert(f.Duration(), f)
		s.Sto.Insert(f.Stops, f)
		s.Sea.Insert(f.Seats, f)
		s.Dep.Insert(f.DepTime, f)
		s.Arr.Insert(f.ArrTime, f)
	}

	return s
}
