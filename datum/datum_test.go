package datum

import (
	"math/big"
	"testing"

	"github.com/dlthomas/sreader/number"
	"github.com/dlthomas/sreader/span"
	"github.com/stretchr/testify/require"
)

func TestBooleanString(t *testing.T) {
	require.Equal(t, "#t", Boolean(true).String())
	require.Equal(t, "#f", Boolean(false).String())
}

func TestCharString(t *testing.T) {
	require.Equal(t, "#\\a", Char('a').String())
	require.Equal(t, "#\\newline", Char('\n').String())
	require.Equal(t, "#\\space", Char(' ').String())
}

func TestStringEscaping(t *testing.T) {
	s := String("hel\tlo\"world")
	require.Equal(t, `"hel\tlo\"world"`, s.String())
}

func TestIdentifierBareVsBarQuoted(t *testing.T) {
	require.Equal(t, "foo-bar?", Identifier("foo-bar?").String())
	require.Equal(t, "+", Identifier("+").String())
	require.Equal(t, "...", Identifier("...").String())
	require.Equal(t, "|has space|", Identifier("has space").String())
	require.Equal(t, "||", Identifier("").String())
}

func TestListString(t *testing.T) {
	l := List{Elements: []Datum{Identifier("a"), Identifier("b"), Identifier("c")}}
	require.Equal(t, "(a b c)", l.String())
}

func TestDottedListString(t *testing.T) {
	l := List{Elements: []Datum{Identifier("a")}, Tail: Identifier("b")}
	require.Equal(t, "(a . b)", l.String())
}

func TestVectorString(t *testing.T) {
	v := Vector{Elements: []Datum{Number{Val: number.NewFixnum(big.NewInt(1))}, Number{Val: number.NewFixnum(big.NewInt(2))}}}
	require.Equal(t, "#(1 2)", v.String())
}

func TestByteVectorString(t *testing.T) {
	bv := ByteVector{Bytes: []byte{0, 255, 17}}
	require.Equal(t, "#u8(0 255 17)", bv.String())
}

func TestQuoteWrappers(t *testing.T) {
	inner := Identifier("x")
	require.Equal(t, "'x", NewQuote(inner).String())
	require.Equal(t, "`x", NewQuasiQuote(inner).String())
	require.Equal(t, ",x", NewUnquote(inner).String())
	require.Equal(t, ",@x", NewUnquoteSplicing(inner).String())
}

func TestLabels(t *testing.T) {
	l := NewLabels()
	d := Identifier("shared")
	require.NoError(t, l.Define(1, d, span.Span{}))
	got, err := l.Resolve(1, span.Span{})
	require.NoError(t, err)
	require.Equal(t, d, got)

	require.Error(t, l.Define(1, d, span.Span{}))

	_, err = l.Resolve(2, span.Span{})
	require.Error(t, err)
}
