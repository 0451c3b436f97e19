package query

import "github.com/aledsdavies/flightql/internal/flight"

// Compare orders a, b lexicographically over criteria, a string over the
// alphabet {'p','d','s'} (spec §4.G). At position i it compares price if
// criteria[i]=='p', duration if 'd', stops if 's'; ties fall through to
// i+1; exhausting criteria with no decision means a and b compare equal.
// Returns -1, 0, or 1.
func Compare(a, b *flight.Flight, criteria string) int {
	for _, c := range criteria {
		var cmp int
		switch c {
		case 'p':
			cmp = compareFloat64(a.Price, b.Price)
		case 'd':
			cmp = compareInt64(a.Duration(), b.Duration())
		case 's':
			cmp = compareInt64(a.Stops, b.Stops)
		}
		if cmp != 0 {
			return cmp
		}
	}
	return 0
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Sort orders flights ascending by criteria in place. The reference
// algorithm is Lomuto-partition quicksort with the last element as pivot
// (spec §4.G); any O(n log n) comparison sort is an acceptable substitute,
// but this is the one spec.md calls out, so it is the one we ground here.
// No stability is guaranteed — nor required, since equal-under-criteria
// flights may appear in either order (spec §8).
func Sort(flights []*flight.Flight, criteria string) {
	quicksort(flights, 0, len(flights)-1, criteria)
}

func quicksort(flights []*flight.Flight, lo, hi int, criteria string) {
	if lo >= hi {
		return
	}
	p := partition(flights, lo, hi, criteria)
	quicksort(flights, lo, p-1, criteria)
	quicksort(flights, p+1, hi, criteria)
}

// partition is the classic Lomuto scheme: pivot is flights[hi], i tracks
// the boundary of the "less than pivot" region.
func partition(flights []*flight.Flight, lo, hi int, criteria string) int {
	pivot := flights[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if Compare(flights[j], pivot, criteria) < 0 {
			flights[i], flights[j] = flights[j], flights[i]
			i++
		}
	}
	flights[i], flights[hi] = flights[hi], flights[i]
	return i
}
