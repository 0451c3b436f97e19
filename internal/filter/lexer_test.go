package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lexAll(input string) []token {
	lx := newLexer(input)
	var out []token
	for {
		tok := lx.next()
		out = append(out, tok)
		if tok.kind == tokEOF {
			break
		}
	}
	return out
}

func kinds(tokens []token) []tokenKind {
	out := make([]tokenKind, len(tokens))
	for i, t := range tokens {
		out[i] = t.kind
	}
	return out
}

func TestLexer_Operators(t *testing.T) {
	got := kinds(lexAll("== != <= >= < > && || ! ( )"))
	want := []tokenKind{tokEQ, tokNE, tokLE, tokGE, tokLT, tokGT, tokAnd, tokOr, tokNot, tokLParen, tokRParen, tokEOF}
	assert.Equal(t, want, got)
}

func TestLexer_TwoCharFormsTakePrecedence(t *testing.T) {
	got := lexAll("<=5")
	assert.Equal(t, tokLE, got[0].kind)
	assert.Equal(t, "<=", got[0].text)
}

func TestLexer_WordStopsAtOperator(t *testing.T) {
	got := lexAll("org==AAA")
	assert.Equal(t, []tokenKind{tokWord, tokEQ, tokWord, tokEOF}, kinds(got))
	assert.Equal(t, "org", got[0].text)
	assert.Equal(t, "AAA", got[2].text)
}

func TestLexer_WhitespaceBetweenTokensIsSkipped(t *testing.T) {
	got := lexAll("org  ==   AAA")
	assert.Equal(t, []tokenKind{tokWord, tokEQ, tokWord, tokEOF}, kinds(got))
}

func TestLexer_TimestampWordIsOneToken(t *testing.T) {
	got := lexAll("dep>2024-01-01T12:00:00")
	assert.Equal(t, tokWord, got[2].kind)
	assert.Equal(t, "2024-01-01T12:00:00", got[2].text)
}

func TestLexer_ColumnsAreOneBased(t *testing.T) {
	got := lexAll("org==AAA")
	assert.Equal(t, 1, got[0].column)
	assert.Equal(t, 4, got[1].column)
	assert.Equal(t, 6, got[2].column)
}

func TestLexer_LoneOperatorCharacterYieldsInvalidTokenAndMakesProgress(t *testing.T) {
	got := lexAll("org& sto")
	assert.Equal(t, []tokenKind{tokWord, tokInvalid, tokWord, tokEOF}, kinds(got))
	assert.Equal(t, "&", got[1].text)
}

func TestLexer_NeverLoopsForeverOnTrailingLoneOperatorChar(t *testing.T) {
	got := lexAll("org==AAA &")
	last := got[len(got)-1]
	assert.Equal(t, tokEOF, last.kind, "lexing must still terminate")
}
