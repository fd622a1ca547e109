package regexast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burslex/internal/alphabet"
)

func TestParseLiteralConcat(t *testing.T) {
	a := alphabet.New()
	n, err := Parse(a, "ab")
	require.NoError(t, err)
	c, ok := n.(*Concat)
	require.True(t, ok)
	l, ok := c.Left.(*Range)
	require.True(t, ok)
	assert.Equal(t, []rune{'a'}, l.Chars)
	r, ok := c.Right.(*Range)
	require.True(t, ok)
	assert.Equal(t, []rune{'b'}, r.Chars)
}

func TestParseOr(t *testing.T) {
	a := alphabet.New()
	n, err := Parse(a, "a|b")
	require.NoError(t, err)
	_, ok := n.(*Or)
	assert.True(t, ok)
}

func TestParsePostfixPrecedence(t *testing.T) {
	a := alphabet.New()
	// "ab*" should parse as a(b*), not (ab)*.
	n, err := Parse(a, "ab*")
	require.NoError(t, err)
	c, ok := n.(*Concat)
	require.True(t, ok)
	_, ok = c.Left.(*Range)
	assert.True(t, ok)
	_, ok = c.Right.(*Star)
	assert.True(t, ok)
}

func TestParseQuestionDesugarsToOrEps(t *testing.T) {
	a := alphabet.New()
	n, err := Parse(a, "a?")
	require.NoError(t, err)
	o, ok := n.(*Or)
	require.True(t, ok)
	_, ok = o.Right.(*Eps)
	assert.True(t, ok)
}

func TestParsePlusDesugarsAndClones(t *testing.T) {
	a := alphabet.New()
	n, err := Parse(a, "a+")
	require.NoError(t, err)
	c, ok := n.(*Concat)
	require.True(t, ok)
	left, ok := c.Left.(*Range)
	require.True(t, ok)
	star, ok := c.Right.(*Star)
	require.True(t, ok)
	inner, ok := star.Child.(*Range)
	require.True(t, ok)
	// The clone must be a distinct slice so mutating one does not alias
	// the other.
	require.NotSame(t, &left.Chars[0], &inner.Chars[0])
}

func TestParseRangeAndNegation(t *testing.T) {
	a := alphabet.New()
	n, err := Parse(a, "[a-c]")
	require.NoError(t, err)
	r, ok := n.(*Range)
	require.True(t, ok)
	assert.Equal(t, []rune{'a', 'b', 'c'}, r.Chars)

	n, err = Parse(a, "[^a-z]")
	require.NoError(t, err)
	r, ok = n.(*Range)
	require.True(t, ok)
	for _, c := range r.Chars {
		assert.False(t, c >= 'a' && c <= 'z')
	}
}

func TestParseEscapeEps(t *testing.T) {
	a := alphabet.New()
	n, err := Parse(a, `\eps`)
	require.NoError(t, err)
	_, ok := n.(*Eps)
	assert.True(t, ok)
}

func TestParseQuoteLiteral(t *testing.T) {
	a := alphabet.New()
	n, err := Parse(a, `"ab"`)
	require.NoError(t, err)
	c, ok := n.(*Concat)
	require.True(t, ok)
	l, ok := c.Left.(*Range)
	require.True(t, ok)
	assert.Equal(t, []rune{'a'}, l.Chars)
}

func TestParseClassname(t *testing.T) {
	a := alphabet.New()
	n, err := Parse(a, ":digit:")
	require.NoError(t, err)
	r, ok := n.(*Range)
	require.True(t, ok)
	assert.Equal(t, 10, len(r.Chars))
}

func TestParseDotMatchesWholeAlphabet(t *testing.T) {
	a := alphabet.New()
	n, err := Parse(a, ".")
	require.NoError(t, err)
	r, ok := n.(*Range)
	require.True(t, ok)
	assert.Equal(t, a.Len(), len(r.Chars))
}

func TestParseErrors(t *testing.T) {
	a := alphabet.New()
	cases := []string{
		"(a",
		"[a-",
		"[]",
		`\epx`,
		`"ab`,
		":nope:",
		"*",
	}
	for _, src := range cases {
		_, err := Parse(a, src)
		assert.Errorf(t, err, "expected error for %q", src)
	}
}
