package token

import (
	"testing"

	"github.com/dlthomas/sreader/span"
	"github.com/stretchr/testify/require"
)

func TestTextSlicesSource(t *testing.T) {
	src := []byte("(foo)")
	tok := Token{
		Kind: Identifier,
		Span: span.New(span.Position{Byte: 1, Char: 1}, span.Position{Byte: 4, Char: 4}),
	}
	require.Equal(t, "foo", tok.Text(src))
}

func TestKindStringKnownAndUnknown(t *testing.T) {
	require.Equal(t, "(", OpenParen.String())
	require.Equal(t, "unknown-token", Kind(999).String())
}
