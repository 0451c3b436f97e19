// Package source implements the driver loop's I/O glue (spec §4.H, §6):
// reading the whitespace-delimited flight batch and line-delimited query
// batch from the input file, and writing query results back out.
package source

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/flightql/internal/apperr"
	"github.com/aledsdavies/flightql/internal/filter"
	"github.com/aledsdavies/flightql/internal/flight"
	"github.com/aledsdavies/flightql/internal/query"
	"github.com/aledsdavies/flightql/internal/timestamp"
)

// Load parses the whole input file: N flight tuples followed by Q query
// lines (spec §6's grammar). Flights and queries are read with different
// tokenizations — whitespace-delimited for counts and flight tuples
// (newlines are insignificant there), line-delimited for queries (an
// expression spans to end of line and blank lines between queries are
// skipped) — so the flight section is consumed word by word and the
// query section is then consumed line by line from wherever that left
// off.
func Load(data string) ([]*flight.Flight, []*query.Query, error) {
	toks := newWordScanner(data)

	n, err := toks.nextInt()
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.KindFlightShape, "reading flight count", err)
	}

	flights := make([]*flight.Flight, 0, n)
	for i := 0; i < n; i++ {
		f, err := readFlight(toks)
		if err != nil {
			return nil, nil, apperr.Wrap(apperr.KindFlightShape, "reading flight tuple", err)
		}
		flights = append(flights, f)
	}

	q, err := toks.nextInt()
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.KindQueryShape, "reading query count", err)
	}

	queries, err := readQueries(data[toks.pos:], q)
	if err != nil {
		return nil, nil, err
	}

	return flights, queries, nil
}

func readFlight(toks *wordScanner) (*flight.Flight, error) {
	origin, err := toks.nextWord()
	if err != nil {
		return nil, err
	}
	destination, err := toks.nextWord()
	if err != nil {
		return nil, err
	}
	priceStr, err := toks.nextWord()
	if err != nil {
		return nil, err
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return nil, err
	}
	seats, err := toks.nextInt()
	if err != nil {
		return nil, err
	}
	departureStr, err := toks.nextWord()
	if err != nil {
		return nil, err
	}
	arrivalStr, err := toks.nextWord()
	if err != nil {
		return nil, err
	}
	stops, err := toks.nextInt()
	if err != nil {
		return nil, err
	}

	depTime, err := timestamp.Parse(departureStr)
	if err != nil {
		return nil, err
	}
	arrTime, err := timestamp.Parse(arrivalStr)
	if err != nil {
		return nil, err
	}
	if arrTime < depTime {
		return nil, apperr.New(apperr.KindFlightOrder,
			"arrival "+arrivalStr+" precedes departure "+departureStr)
	}

	return &flight.Flight{
		Origin:       origin,
		Destination:  destination,
		Price:        price,
		Seats:        int64(seats),
		DepartureStr: departureStr,
		ArrivalStr:   arrivalStr,
		DepTime:      depTime,
		ArrTime:      arrTime,
		Stops:        int64(stops),
	}, nil
}

// readQueries reads exactly n non-blank lines from rest, skipping blank
// lines between them, and parses each as "K CRITERIA EXPRESSION".
func readQueries(rest string, n int) ([]*query.Query, error) {
	lines := strings.Split(rest, "\n")

	queries := make([]*query.Query, 0, n)
	for _, line := range lines {
		if len(queries) == n {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		q, err := parseQueryLine(line)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}

	if len(queries) != n {
		return nil, apperr.New(apperr.KindQueryShape, "fewer query lines than declared")
	}

	return queries, nil
}

// parseQueryLine parses "K CRITERIA EXPRESSION": K and CRITERIA are the
// first two whitespace-delimited tokens, and EXPRESSION is everything
// after them verbatim (including interior whitespace) apart from trailing
// blanks, which are trimmed. The echo line joins the three with single
// spaces (spec §4.H, §9).
func parseQueryLine(line string) (*query.Query, error) {
	trimmed := strings.TrimLeft(line, " \t")

	kEnd := indexOfSpace(trimmed)
	if kEnd < 0 {
		return nil, apperr.New(apperr.KindQueryShape, "malformed query line: missing criteria/expression")
	}
	kStr := trimmed[:kEnd]
	k, err := strconv.Atoi(kStr)
	if err != nil || k <= 0 {
		return nil, apperr.Wrap(apperr.KindQueryShape, "invalid K in query line", err)
	}

	rest := strings.TrimLeft(trimmed[kEnd:], " \t")
	cEnd := indexOfSpace(rest)
	if cEnd < 0 {
		return nil, apperr.New(apperr.KindQueryShape, "malformed query line: missing expression")
	}
	criteria := rest[:cEnd]
	if criteria == "" {
		return nil, apperr.New(apperr.KindQueryShape, "empty sort criteria")
	}

	expr := strings.TrimLeft(rest[cEnd:], " \t")
	expr = strings.TrimRight(expr, " \t\r")
	if expr == "" {
		return nil, apperr.New(apperr.KindQueryShape, "empty filter expression")
	}

	ast, err := filter.Parse(expr)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindFilterParse, "parsing filter expression", err)
	}

	echo := kStr + " " + criteria + " " + expr

	return &query.Query{
		MaxResults:   k,
		SortCriteria: criteria,
		Filter:       ast,
		Echo:         echo,
	}, nil
}

func indexOfSpace(s string) int {
	return strings.IndexAny(s, " \t")
}
