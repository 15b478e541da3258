package formula

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func v(name string) *Node { return Var(name) }

func mustAnd(t *testing.T, children ...*Node) *Node {
	t.Helper()
	n, err := And(children...)
	require.NoError(t, err)
	return n
}

func mustOr(t *testing.T, children ...*Node) *Node {
	t.Helper()
	n, err := Or(children...)
	require.NoError(t, err)
	return n
}

func mustThreshold(t *testing.T, k int, children ...*Node) *Node {
	t.Helper()
	n, err := Threshold(k, children...)
	require.NoError(t, err)
	return n
}

func TestParseAnd(t *testing.T) {
	got, err := Parse("a & b")
	require.NoError(t, err)
	require.True(t, got.Equal(mustAnd(t, v("a"), v("b"))))
}

func TestParseAndMany(t *testing.T) {
	got, err := Parse("a & b & c & d & e")
	require.NoError(t, err)
	require.True(t, got.Equal(mustAnd(t, v("a"), v("b"), v("c"), v("d"), v("e"))))
}

func TestParseAndNoWhitespace(t *testing.T) {
	got, err := Parse("a&b&c")
	require.NoError(t, err)
	require.True(t, got.Equal(mustAnd(t, v("a"), v("b"), v("c"))))
}

func TestParseNameWithSpaces(t *testing.T) {
	got, err := Parse("John Doe & Bill Smyth")
	require.NoError(t, err)
	require.True(t, got.Equal(mustAnd(t, v("John Doe"), v("Bill Smyth"))))
}

func TestParseThreshold(t *testing.T) {
	got, err := Parse("T3(a, b, c)")
	require.NoError(t, err)
	require.True(t, got.Equal(mustThreshold(t, 3, v("a"), v("b"), v("c"))))
}

func TestParsePlainTVersusThreshold(t *testing.T) {
	got, err := Parse("T & T2(a, b)")
	require.NoError(t, err)
	want := mustAnd(t, v("T"), mustThreshold(t, 2, v("a"), v("b")))
	require.True(t, got.Equal(want))
}

func TestParsePrecedence(t *testing.T) {
	got, err := Parse("a & b | c & d")
	require.NoError(t, err)
	want := mustOr(t, mustAnd(t, v("a"), v("b")), mustAnd(t, v("c"), v("d")))
	require.True(t, got.Equal(want))
}

func TestParseParentheses(t *testing.T) {
	got, err := Parse("a & (b | c) & d")
	require.NoError(t, err)
	want := mustAnd(t, v("a"), mustOr(t, v("b"), v("c")), v("d"))
	require.True(t, got.Equal(want))
}

func TestParseComplex(t *testing.T) {
	got, err := Parse("a & (b | c) & T2(x | y, q, w&e)")
	require.NoError(t, err)
	want := mustAnd(t,
		v("a"),
		mustOr(t, v("b"), v("c")),
		mustThreshold(t, 2,
			mustOr(t, v("x"), v("y")),
			v("q"),
			mustAnd(t, v("w"), v("e")),
		),
	)
	require.True(t, got.Equal(want))
}

func TestParseTrailingGarbageIsError(t *testing.T) {
	_, err := Parse("a & b )")
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
}

func TestParseEmptyNameIsError(t *testing.T) {
	_, err := Parse("a & & b")
	require.Error(t, err)
}

func TestParseUnbalancedParens(t *testing.T) {
	_, err := Parse("(a & b")
	require.Error(t, err)
}

func TestParseInvalidThresholdK(t *testing.T) {
	_, err := Parse("T0(a, b)")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidFormula)
}

func TestParseThresholdKExceedsChildren(t *testing.T) {
	_, err := Parse("T5(a, b)")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidFormula)
}

func TestParseErrorHasCaretExcerpt(t *testing.T) {
	_, err := Parse("a & ) b")
	require.Error(t, err)
	require.Contains(t, err.Error(), "^")
}
