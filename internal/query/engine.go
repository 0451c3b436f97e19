package query

import (
	"github.com/aledsdavies/flightql/internal/flight"
	"github.com/aledsdavies/flightql/internal/index"
)

// Engine holds the eight build-time indexes and the full flight array,
// both read-only during the query phase (spec §5).
type Engine struct {
	Flights []*flight.Flight
	Index   *index.Set
}

// NewEngine builds the eight secondary indexes over flights.
func NewEngine(flights []*flight.Flight) *Engine {
	return &Engine{
		Flights: flights,
		Index:   index.Build(flights),
	}
}

// Run executes q's full pipeline: find an indexable leaf, materialize
// candidates, filter, sort, truncate (spec §4.F steps 1-5). An empty
// result is not an error.
func (e *Engine) Run(q *Query) []*flight.Flight {
	logger := plannerLogger()

	var candidates []*flight.Flight
	if pred, ok := FindIndexable(q.Filter); ok {
		logger.Debug("indexable leaf found", "field", pred.Field.String(), "op", pred.Op.String())
		candidates = Materialize(e.Index, pred)
	} else {
		logger.Debug("no indexable leaf, full scan")
		candidates = e.Flights
	}

	var results []*flight.Flight
	for _, f := range candidates {
		if q.Filter.Eval(f) {
			results = append(results, f)
		}
	}

	Sort(results, q.SortCriteria)

	if len(results) > q.MaxResults {
		results = results[:q.MaxResults]
	}

	return results
}
