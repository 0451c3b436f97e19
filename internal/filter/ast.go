package filter

import "github.com/aledsdavies/flightql/internal/flight"

// Expr is a closed variant over the predicate AST: And, Or, Not, and Pred
// are its only implementations. A closed sum type is preferred over a
// class hierarchy with runtime type-tests (spec §9); exprNode is the
// unexported marker that closes the set to this package.
type Expr interface {
	Eval(f *flight.Flight) bool
	exprNode()
}

// And is short-circuit: Right is never evaluated once Left is false.
type And struct {
	Left, Right Expr
}

func (e *And) exprNode() {}

func (e *And) Eval(f *flight.Flight) bool {
	return e.Left.Eval(f) && e.Right.Eval(f)
}

// Or is short-circuit: Right is never evaluated once Left is true.
type Or struct {
	Left, Right Expr
}

func (e *Or) exprNode() {}

func (e *Or) Eval(f *flight.Flight) bool {
	return e.Left.Eval(f) || e.Right.Eval(f)
}

// Not negates its child.
type Not struct {
	Child Expr
}

func (e *Not) exprNode() {}

func (e *Not) Eval(f *flight.Flight) bool {
	return !e.Child.Eval(f)
}

// Field identifies one of the eight recognized attributes.
type Field int

const (
	FieldOrg Field = iota
	FieldDst
	FieldPrc
	FieldDur
	FieldSto
	FieldSea
	FieldDep
	FieldArr
)

// String names mirror the token text in the grammar (spec §4.D, §6).
func (f Field) String() string {
	switch f {
	case FieldOrg:
		return "org"
	case FieldDst:
		return "dst"
	case FieldPrc:
		return "prc"
	case FieldDur:
		return "dur"
	case FieldSto:
		return "sto"
	case FieldSea:
		return "sea"
	case FieldDep:
		return "dep"
	case FieldArr:
		return "arr"
	default:
		return "?"
	}
}

// IsCode reports whether Field holds a 3-char airport code (string
// comparison), as opposed to a numeric or timestamp attribute.
func (f Field) IsCode() bool {
	return f == FieldOrg || f == FieldDst
}

// IsTimestamp reports whether Field's value is an epoch-second attribute
// parsed from a timestamp token rather than a decimal literal.
func (f Field) IsTimestamp() bool {
	return f == FieldDep || f == FieldArr
}

// Op is one of the six comparison operators (spec §4.D).
type Op int

const (
	OpEQ Op = iota
	OpNE
	OpLT
	OpLE
	OpGT
	OpGE
)

func (op Op) String() string {
	switch op {
	case OpEQ:
		return "=="
	case OpNE:
		return "!="
	case OpLT:
		return "<"
	case OpLE:
		return "<="
	case OpGT:
		return ">"
	case OpGE:
		return ">="
	default:
		return "?"
	}
}

// Pred is a comparison leaf: field op value. Exactly one of Str, Num, or
// Epoch is meaningful, chosen by Field's kind — see IsCode/IsTimestamp.
type Pred struct {
	Field Field
	Op    Op

	Str   string  // meaningful when Field.IsCode()
	Num   float64 // meaningful for prc/dur/sto/sea
	Epoch int64   // meaningful when Field.IsTimestamp()
}

func (e *Pred) exprNode() {}

// Eval always compares in the attribute's most precise native
// representation, regardless of how a query literal was cast when it was
// used to bound an index range scan. This is what makes the planner's
// candidate-then-filter pipeline sound (spec §8): a range scan may
// truncate an integer-field bound, but Eval never does, so the final
// filter pass always reproduces the exact predicate.
func (e *Pred) Eval(f *flight.Flight) bool {
	switch e.Field {
	case FieldOrg:
		return compareStr(f.Origin, e.Op, e.Str)
	case FieldDst:
		return compareStr(f.Destination, e.Op, e.Str)
	case FieldPrc:
		return compareFloat(f.Price, e.Op, e.Num)
	case FieldDur:
		return compareFloat(float64(f.Duration()), e.Op, e.Num)
	case FieldSto:
		return compareFloat(float64(f.Stops), e.Op, e.Num)
	case FieldSea:
		return compareFloat(float64(f.Seats), e.Op, e.Num)
	case FieldDep:
		return compareInt(f.DepTime, e.Op, e.Epoch)
	case FieldArr:
		return compareInt(f.ArrTime, e.Op, e.Epoch)
	default:
		return false
	}
}

// compareStr compares raw bytes lexicographically, which is exactly what
// Go's native string ordering does.
func compareStr(a string, op Op, b string) bool {
	switch op {
	case OpEQ:
		return a == b
	case OpNE:
		return a != b
	case OpLT:
		return a < b
	case OpLE:
		return a <= b
	case OpGT:
		return a > b
	case OpGE:
		return a >= b
	default:
		return false
	}
}

func compareFloat(a float64, op Op, b float64) bool {
	switch op {
	case OpEQ:
		return a == b
	case OpNE:
		return a != b
	case OpLT:
		return a < b
	case OpLE:
		return a <= b
	case OpGT:
		return a > b
	case OpGE:
		return a >= b
	default:
		return false
	}
}

func compareInt(a int64, op Op, b int64) bool {
	switch op {
	case OpEQ:
		return a == b
	case OpNE:
		return a != b
	case OpLT:
		return a < b
	case OpLE:
		return a <= b
	case OpGT:
		return a > b
	case OpGE:
		return a >= b
	default:
		return false
	}
}
