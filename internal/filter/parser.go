// Package filter implements the boolean predicate language used by
// queries: a recursive-descent parser (spec §4.D) producing a closed
// predicate AST (spec §4.C).
package filter

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/aledsdavies/flightql/internal/timestamp"
)

// parseTimestampToken converts a dep/arr value token into UTC epoch
// seconds via the shared timestamp parser (spec §6).
func parseTimestampToken(s string) (int64, error) {
	return timestamp.Parse(s)
}

// Parser holds the token stream and position for one expression parse.
// Mirrors the teacher's cli/internal/parser.Parser shape: raw input kept
// for error snippets, a flat token slice, an integer cursor.
type Parser struct {
	input  string
	tokens []token
	pos    int
	logger *slog.Logger
}

// debugLogger returns a slog logger gated by FLIGHTQL_DEBUG, following the
// teacher's DEVCMD_DEBUG_PARSER pattern: timestamps and levels stripped
// for compact trace lines, silent unless explicitly enabled.
func debugLogger() *slog.Logger {
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

// Parse parses a single-line filter expression into its predicate AST.
// Any grammar violation returns a *ParseError carrying a column and
// source snippet; per spec §7 this is always fatal to the caller.
func Parse(expr string) (Expr, error) {
	lx := newLexer(expr)
	var tokens []token
	for {
		t := lx.next()
		tokens = append(tokens, t)
		if t.kind == tokEOF {
			break
		}
	}

	p := &Parser{input: expr, tokens: tokens, logger: debugLogger()}
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if p.current().kind != tokEOF {
		return nil, p.errorf("unexpected trailing input after expression")
	}

	return e, nil
}

func (p *Parser) current() token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) match(kind tokenKind) bool {
	return p.current().kind == kind
}

// or := and ( "||" and )*
func (p *Parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.match(tokOr) {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{Left: left, Right: right}
	}
	return left, nil
}

// and := not ( "&&" not )*
func (p *Parser) parseAnd() (Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.match(tokAnd) {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &And{Left: left, Right: right}
	}
	return left, nil
}

// not := "!" not | primary
func (p *Parser) parseNot() (Expr, error) {
	if p.match(tokNot) {
		p.advance()
		child, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &Not{Child: child}, nil
	}
	return p.parsePrimary()
}

// primary := "(" expr ")" | predicate
func (p *Parser) parsePrimary() (Expr, error) {
	if p.match(tokLParen) {
		p.advance()
		e, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if !p.match(tokRParen) {
			return nil, p.errorf("missing ')'")
		}
		p.advance()
		return e, nil
	}
	return p.parsePredicate()
}

// predicate := field op value
func (p *Parser) parsePredicate() (Expr, error) {
	p.logger.Debug("parsePredicate", "token", p.current().text)

	fieldTok := p.current()
	if fieldTok.kind == tokEOF {
		return nil, p.errorf("expected predicate, reached end of expression")
	}
	if fieldTok.kind != tokWord {
		return nil, p.errorf("expected a field name, got %q", fieldTok.text)
	}

	field, ok := parseField(fieldTok.text)
	if !ok {
		return nil, p.unknownFieldError(fieldTok)
	}
	p.advance()

	op, ok := parseOp(p.current())
	if !ok {
		return nil, p.errorf("expected a comparison operator after field %q", field.String())
	}
	p.advance()

	valueTok := p.current()
	if valueTok.kind != tokWord {
		return nil, p.errorf("expected a value after %s %s", field.String(), op.String())
	}
	p.advance()

	pred, err := p.buildPred(field, op, valueTok)
	if err != nil {
		return nil, err
	}

	return pred, nil
}

func (p *Parser) buildPred(field Field, op Op, valueTok token) (*Pred, error) {
	switch {
	case field.IsCode():
		if !isLetters(valueTok.text) {
			return nil, p.errorf("field %q expects an identifier value, got %q", field.String(), valueTok.text)
		}
		return &Pred{Field: field, Op: op, Str: valueTok.text}, nil

	case field.IsTimestamp():
		epoch, err := parseTimestampToken(valueTok.text)
		if err != nil {
			return nil, p.errorfAt(valueTok.column, "field %q expects a timestamp value: %v", field.String(), err)
		}
		return &Pred{Field: field, Op: op, Epoch: epoch}, nil

	default:
		num, err := strconv.ParseFloat(valueTok.text, 64)
		if err != nil {
			return nil, p.errorfAt(valueTok.column, "field %q expects a numeric value, got %q", field.String(), valueTok.text)
		}
		return &Pred{Field: field, Op: op, Num: num}, nil
	}
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

func parseField(s string) (Field, bool) {
	switch s {
	case "org":
		return FieldOrg, true
	case "dst":
		return FieldDst, true
	case "prc":
		return FieldPrc, true
	case "dur":
		return FieldDur, true
	case "sto":
		return FieldSto, true
	case "sea":
		return FieldSea, true
	case "dep":
		return FieldDep, true
	case "arr":
		return FieldArr, true
	default:
		return 0, false
	}
}

func parseOp(t token) (Op, bool) {
	switch t.kind {
	case tokEQ:
		return OpEQ, true
	case tokNE:
		return OpNE, true
	case tokLT:
		return OpLT, true
	case tokLE:
		return OpLE, true
	case tokGT:
		return OpGT, true
	case tokGE:
		return OpGE, true
	default:
		return 0, false
	}
}

func (p *Parser) unknownFieldError(t token) error {
	suggestion := suggestField(t.text)
	return &ParseError{
		Message:    fmt.Sprintf("unknown field %q", t.text),
		Input:      p.input,
		Column:     t.column,
		Suggestion: suggestion,
	}
}

func (p *Parser) errorf(format string, args ...any) error {
	return p.errorfAt(p.current().column, format, args...)
}

func (p *Parser) errorfAt(column int, format string, args ...any) error {
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Input:   p.input,
		Column:  column,
	}
}
