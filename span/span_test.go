package span

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpanLengths(t *testing.T) {
	s := New(Position{Byte: 2, Char: 2}, Position{Byte: 6, Char: 4})
	require.Equal(t, 4, s.ByteLen())
	require.Equal(t, 2, s.CharLen())
	require.False(t, s.IsEmpty())
}

func TestEmptySpan(t *testing.T) {
	p := Position{Byte: 3, Char: 3}
	s := Empty(p)
	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.ByteLen())
}

func TestUnion(t *testing.T) {
	a := New(Position{Byte: 0, Char: 0}, Position{Byte: 3, Char: 3})
	b := New(Position{Byte: 5, Char: 5}, Position{Byte: 9, Char: 9})
	u := a.Union(b)
	require.Equal(t, 0, u.Start.Byte)
	require.Equal(t, 9, u.End.Byte)
}

func TestSlice(t *testing.T) {
	src := []byte("hello world")
	s := New(Position{Byte: 6, Char: 6}, Position{Byte: 11, Char: 11})
	require.Equal(t, "world", s.Slice(src))
}
