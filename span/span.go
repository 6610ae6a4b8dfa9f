// Package span provides the source-position and span types shared by the
// lexer, reader, and diagnostics packages.
package span

import "fmt"

// Position is a pair of offsets into a source buffer: the byte offset,
// which indexes the underlying UTF-8 bytes, and the character offset,
// which counts decoded codepoints. Byte offsets drive substring
// extraction; character offsets are the user-facing unit in diagnostics.
type Position struct {
	Byte int
	Char int
}

// String renders a position as "char:byte", e.g. "12:13" when one 2-byte
// codepoint precedes the position.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Char, p.Byte)
}

// Span is a half-open range [Start, End) of positions.
type Span struct {
	Start Position
	End   Position
}

// New builds a Span from two positions.
func New(start, end Position) Span {
	return Span{Start: start, End: end}
}

// Empty returns a zero-length span at the given position.
func Empty(at Position) Span {
	return Span{Start: at, End: at}
}

// CharLen returns the span's length in characters.
func (s Span) CharLen() int {
	return s.End.Char - s.Start.Char
}

// ByteLen returns the span's length in bytes.
func (s Span) ByteLen() int {
	return s.End.Byte - s.Start.Byte
}

// IsEmpty is true for a zero-length span.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Union returns the smallest span covering both s and other.
func (s Span) Union(other Span) Span {
	start := s.Start
	if other.Start.Byte < start.Byte {
		start = other.Start
	}
	end := s.End
	if other.End.Byte > end.Byte {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Slice returns the byte-indexed substring of src covered by the span.
func (s Span) Slice(src []byte) string {
	return string(src[s.Start.Byte:s.End.Byte])
}

// String renders a span as "start-end".
func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
