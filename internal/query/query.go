// Package query implements the planner/evaluator (spec §4.F) and sort
// routine (spec §4.G) that turn a parsed filter expression into a ranked,
// truncated slice of matching flights.
package query

import "github.com/aledsdavies/flightql/internal/filter"

// Query is one request: return up to MaxResults flights matching Filter,
// ordered by SortCriteria.
type Query struct {
	MaxResults   int
	SortCriteria string // alphabet {'p','d','s'}; see Compare in sort.go
	Filter       filter.Expr

	// Echo is the "K CRITERIA EXPRESSION" line written on output: K and
	// CRITERIA as read, joined by single spaces to the expression text,
	// which keeps its interior whitespace (spec §4.H, §9).
	Echo string
}
