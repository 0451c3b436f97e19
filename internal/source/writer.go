package source

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aledsdavies/flightql/internal/flight"
	"github.com/aledsdavies/flightql/internal/query"
)

// WriteResult writes one query's output: the echo line, then one line per
// matched flight using the original timestamp strings and a shortest
// round-trip decimal for price (spec §4.H, §6).
func WriteResult(w io.Writer, q *query.Query, results []*flight.Flight) error {
	if _, err := fmt.Fprintln(w, q.Echo); err != nil {
		return err
	}
	for _, f := range results {
		if _, err := fmt.Fprintln(w, formatFlight(f)); err != nil {
			return err
		}
	}
	return nil
}

func formatFlight(f *flight.Flight) string {
	price := strconv.FormatFloat(f.Price, 'g', -1, 64)
	return fmt.Sprintf("%s %s %s %d %s %s %d",
		f.Origin, f.Destination, price, f.Seats, f.DepartureStr, f.ArrivalStr, f.Stops)
}
