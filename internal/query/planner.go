package query

import (
	"log/slog"
	"math"
	"os"

	"github.com/aledsdavies/flightql/internal/filter"
	"github.com/aledsdavies/flightql/internal/flight"
	"github.com/aledsdavies/flightql/internal/index"
)

func plannerLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("FLIGHTQL_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// FindIndexable descends the predicate AST, but only into the left and
// right of And nodes — never into Or or Not, since those do not preserve
// the subset property the planner relies on (spec §4.F step 1). It
// returns the first Pred leaf (left-first depth-first) whose field is
// recognized and whose operator is not NE.
func FindIndexable(e filter.Expr) (*filter.Pred, bool) {
	switch n := e.(type) {
	case *filter.And:
		if p, ok := FindIndexable(n.Left); ok {
			return p, true
		}
		return FindIndexable(n.Right)
	case *filter.Pred:
		if n.Op != filter.OpNE {
			return n, true
		}
		return nil, false
	default:
		// Or and Not: never descended into.
		return nil, false
	}
}

// Materialize returns the candidate set for pred: the range scan on the
// field's index mapped from pred's operator (spec §4.F step 2). EQ maps
// to a closed [v,v] scan, LT/LE/GT/GE to the corresponding half-open or
// unbounded scan.
func Materialize(idx *index.Set, pred *filter.Pred) []*flight.Flight {
	switch pred.Field {
	case filter.FieldOrg:
		return scanString(idx.Org, pred)
	case filter.FieldDst:
		return scanString(idx.Dst, pred)
	case filter.FieldPrc:
		return scanFloat(idx.Prc, pred)
	case filter.FieldDur:
		return scanInt(idx.Dur, pred)
	case filter.FieldSto:
		return scanInt(idx.Sto, pred)
	case filter.FieldSea:
		return scanInt(idx.Sea, pred)
	case filter.FieldDep:
		return scanEpoch(idx.Dep, pred)
	case filter.FieldArr:
		return scanEpoch(idx.Arr, pred)
	default:
		// Unreachable: the parser only ever produces the eight
		// recognized fields above (spec §4.F: "cannot occur if the
		// parser validated fields").
		panic("query: materialize on unrecognized field " + pred.Field.String())
	}
}

func scanString(t *index.Tree[string], pred *filter.Pred) []*flight.Flight {
	low, lowIncl, high, highIncl := bounds(pred.Str, pred.Op)
	return t.RangeQuery(low, lowIncl, high, highIncl)
}

func scanFloat(t *index.Tree[float64], pred *filter.Pred) []*flight.Flight {
	low, lowIncl, high, highIncl := bounds(pred.Num, pred.Op)
	return t.RangeQuery(low, lowIncl, high, highIncl)
}

// scanInt handles the three integer fields (dur/sto/sea). A real-valued
// query literal on an integer field is truncated toward zero when cast
// into the index's key type — preserved for compatibility per spec §9's
// open question; Pred.Eval (never truncating) is what keeps the final
// result exact regardless.
func scanInt(t *index.Tree[int64], pred *filter.Pred) []*flight.Flight {
	v := int64(math.Trunc(pred.Num))
	low, lowIncl, high, highIncl := bounds(v, pred.Op)
	return t.RangeQuery(low, lowIncl, high, highIncl)
}

func scanEpoch(t *index.Tree[int64], pred *filter.Pred) []*flight.Flight {
	low, lowIncl, high, highIncl := bounds(pred.Epoch, pred.Op)
	return t.RangeQuery(low, lowIncl, high, highIncl)
}

// bounds maps an operator and its comparison value v to the (low, high)
// interval spec §4.F step 2 specifies: EQ -> [v,v], LT -> (-inf,v),
// LE -> (-inf,v], GT -> (v,+inf), GE -> [v,+inf). A nil pointer means
// unbounded on that side.
func bounds[V any](v V, op filter.Op) (low *V, lowIncl bool, high *V, highIncl bool) {
	switch op {
	case filter.OpEQ:
		return &v, true, &v, true
	case filter.OpLT:
		return nil, false, &v, false
	case filter.OpLE:
		return nil, false, &v, true
	case filter.OpGT:
		return &v, false, nil, false
	case filter.OpGE:
		return &v, true, nil, false
	default:
		return nil, false, nil, false
	}
}
