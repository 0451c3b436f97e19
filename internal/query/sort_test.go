package query

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aledsdavies/flightql/internal/flight"
)

func TestCompare_SingleCriterion(t *testing.T) {
	cheap := &flight.Flight{Price: 100}
	pricey := &flight.Flight{Price: 200}
	assert.Equal(t, -1, Compare(cheap, pricey, "p"))
	assert.Equal(t, 1, Compare(pricey, cheap, "p"))
	assert.Equal(t, 0, Compare(cheap, cheap, "p"))
}

func TestCompare_TiesFallThroughToNextCriterion(t *testing.T) {
	a := &flight.Flight{Price: 100, DepTime: 0, ArrTime: 3600, Stops: 1}
	b := &flight.Flight{Price: 100, DepTime: 0, ArrTime: 1800, Stops: 0}
	assert.Equal(t, 1, Compare(a, b, "pd"), "equal price, a has the longer duration")
	assert.Equal(t, 1, Compare(a, b, "ps"), "equal price, a has more stops")
}

func TestCompare_ExhaustedCriteriaIsEqual(t *testing.T) {
	a := &flight.Flight{Price: 100}
	b := &flight.Flight{Price: 200}
	assert.Equal(t, 0, Compare(a, b, ""), "no criteria characters means no decision")
}

func TestSort_OrdersAscendingByCriteria(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	flights := make([]*flight.Flight, 200)
	for i := range flights {
		flights[i] = &flight.Flight{Price: float64(r.Intn(1000))}
	}

	Sort(flights, "p")

	for i := 1; i < len(flights); i++ {
		assert.LessOrEqual(t, flights[i-1].Price, flights[i].Price)
	}
}

func TestSort_MultiKeyMatchesStandardLibrarySort(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	flights := make([]*flight.Flight, 150)
	for i := range flights {
		flights[i] = &flight.Flight{
			Price:   float64(r.Intn(5)),
			DepTime: 0,
			ArrTime: int64(r.Intn(5)),
			Stops:   int64(r.Intn(3)),
		}
	}

	want := make([]*flight.Flight, len(flights))
	copy(want, flights)
	sort.SliceStable(want, func(i, j int) bool {
		return Compare(want[i], want[j], "pds") < 0
	})

	got := make([]*flight.Flight, len(flights))
	copy(got, flights)
	Sort(got, "pds")

	for i := range got {
		assert.Equal(t, 0, Compare(want[i], got[i], "pds"), "position %d", i)
	}
}

func TestSort_EmptyAndSingleElement(t *testing.T) {
	var empty []*flight.Flight
	Sort(empty, "p")
	assert.Empty(t, empty)

	single := []*flight.Flight{{Price: 1}}
	Sort(single, "p")
	assert.Len(t, single, 1)
}
