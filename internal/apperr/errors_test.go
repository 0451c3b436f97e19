package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MessageIncludesKindAndMessage(t *testing.T) {
	err := New(KindFlightShape, "bad tuple")
	assert.Contains(t, err.Error(), string(KindFlightShape))
	assert.Contains(t, err.Error(), "bad tuple")
}

func TestWrap_MessageIncludesCause(t *testing.T) {
	cause := errors.New("unexpected end of input")
	err := Wrap(KindQueryShape, "reading query count", cause)
	assert.Contains(t, err.Error(), "unexpected end of input")
}

func TestWrap_UnwrapsToCause(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(KindInputRead, "reading file", cause)
	assert.ErrorIs(t, err, cause)
}

func TestNew_HasNoCause(t *testing.T) {
	err := New(KindFlightOrder, "arrival before departure")
	assert.Nil(t, err.Unwrap())
}

func TestError_ErrorsAsMatchesByKind(t *testing.T) {
	var err error = Wrap(KindFilterParse, "parsing", errors.New("x"))

	var ae *Error
	assert.ErrorAs(t, err, &ae)
	assert.Equal(t, KindFilterParse, ae.Kind)
}
