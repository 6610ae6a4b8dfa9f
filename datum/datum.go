// Package datum implements the recursive Datum sum type produced by the
// reader: booleans, characters, numbers, strings, identifiers,
// directives, elided comments (when comment-preserving), lists (with
// the dotted-pair convention), vectors, byte vectors, and the four
// quoting wrappers.
//
// The interface-plus-concrete-struct shape follows knakk/rdf's Term
// interface (rdf.go), which dispatches String/Eq/Type across Blank, URI,
// and Literal the same way Datum dispatches String/Kind across its
// leaf and composite variants.
package datum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlthomas/sreader/number"
)

// Kind discriminates the Datum variants.
type Kind int

const (
	BooleanKind Kind = iota
	CharKind
	NumberKind
	StringKind
	IdentifierKind
	DirectiveKind
	CommentKind
	ListKind
	VectorKind
	ByteVectorKind
	QuoteKind
	QuasiQuoteKind
	UnquoteKind
	UnquoteSplicingKind
)

// Datum is the sum type for every value the reader can produce.
type Datum interface {
	fmt.Stringer
	Kind() Kind
	// GoString renders a structural, developer-facing dump of the datum,
	// distinct from the canonical surface-syntax text String returns.
	GoString() string
}

// Boolean is a #t/#f leaf.
type Boolean bool

func (Boolean) Kind() Kind { return BooleanKind }
func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}
func (b Boolean) GoString() string { return fmt.Sprintf("Boolean(%t)", bool(b)) }

// Char is a character leaf, holding a Unicode scalar value.
type Char rune

func (Char) Kind() Kind { return CharKind }
func (c Char) String() string {
	if name, ok := charNameFor(rune(c)); ok {
		return "#\\" + name
	}
	return "#\\" + string(rune(c))
}
func (c Char) GoString() string { return fmt.Sprintf("Char(%U)", rune(c)) }

// Number wraps a numeric leaf.
type Number struct {
	Val number.Number
}

func (Number) Kind() Kind         { return NumberKind }
func (n Number) String() string   { return n.Val.String() }
func (n Number) GoString() string { return fmt.Sprintf("Number(%s, %s)", n.Val.Kind(), n.Val) }

// String is a string leaf; its text is already unescaped.
type String string

func (String) Kind() Kind { return StringKind }
func (s String) String() string {
	return "\"" + escapeString(string(s)) + "\""
}
func (s String) GoString() string { return fmt.Sprintf("String(%q)", string(s)) }

// Identifier is an identifier leaf; its text is already unescaped (bar
// quotes and hex escapes resolved).
type Identifier string

func (Identifier) Kind() Kind     { return IdentifierKind }
func (i Identifier) String() string {
	if needsBarQuoting(string(i)) {
		return "|" + escapeIdentifier(string(i)) + "|"
	}
	return string(i)
}
func (i Identifier) GoString() string { return fmt.Sprintf("Identifier(%q)", string(i)) }

// Directive is a recognized #!<name> directive. Its effect, if any, is
// not acted upon by this module (see SPEC_FULL.md's Open Question
// decisions).
type Directive string

func (Directive) Kind() Kind       { return DirectiveKind }
func (d Directive) String() string { return "#!" + string(d) }
func (d Directive) GoString() string {
	return fmt.Sprintf("Directive(%q)", string(d))
}

// CommentStyle distinguishes the comment syntax a Comment datum was
// elided from.
type CommentStyle int

const (
	LineCommentStyle CommentStyle = iota
	BlockCommentStyle
)

// Comment preserves an elided line or block comment's text, produced
// only in comment-preserving reader mode.
type Comment struct {
	Text  string
	Style CommentStyle
}

func (Comment) Kind() Kind { return CommentKind }
func (c Comment) String() string {
	if c.Style == BlockCommentStyle {
		return "#|" + c.Text + "|#"
	}
	return ";" + c.Text
}
func (c Comment) GoString() string { return fmt.Sprintf("Comment(%q)", c.Text) }

// List is a (possibly improper) list. Tail is nil for a proper list; if
// non-nil, it is the final cdr of a dotted pair.
type List struct {
	Elements []Datum
	Tail     Datum
}

func (List) Kind() Kind { return ListKind }
func (l List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range l.Elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	if l.Tail != nil {
		b.WriteString(" . ")
		b.WriteString(l.Tail.String())
	}
	b.WriteByte(')')
	return b.String()
}
func (l List) GoString() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.GoString()
	}
	tail := "nil"
	if l.Tail != nil {
		tail = l.Tail.GoString()
	}
	return fmt.Sprintf("List([%s], tail=%s)", strings.Join(parts, ", "), tail)
}

// Vector is a #(...) literal.
type Vector struct {
	Elements []Datum
}

func (Vector) Kind() Kind { return VectorKind }
func (v Vector) String() string {
	var b strings.Builder
	b.WriteString("#(")
	for i, e := range v.Elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}
func (v Vector) GoString() string {
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		parts[i] = e.GoString()
	}
	return fmt.Sprintf("Vector([%s])", strings.Join(parts, ", "))
}

// ByteVector is a #u8(...) literal.
type ByteVector struct {
	Bytes []byte
}

func (ByteVector) Kind() Kind { return ByteVectorKind }
func (bv ByteVector) String() string {
	var b strings.Builder
	b.WriteString("#u8(")
	for i, x := range bv.Bytes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(x)))
	}
	b.WriteByte(')')
	return b.String()
}
func (bv ByteVector) GoString() string {
	return fmt.Sprintf("ByteVector(%v)", bv.Bytes)
}

// Quoted is shared by the four quoting wrappers; each holds exactly one
// inner datum.
type Quoted struct {
	Inner  Datum
	kind   Kind
	marker string
}

func (q Quoted) Kind() Kind { return q.kind }
func (q Quoted) String() string {
	return q.marker + q.Inner.String()
}
func (q Quoted) GoString() string {
	return fmt.Sprintf("%s(%s)", q.kind, q.Inner.GoString())
}

func NewQuote(inner Datum) Quoted {
	return Quoted{Inner: inner, kind: QuoteKind, marker: "'"}
}

func NewQuasiQuote(inner Datum) Quoted {
	return Quoted{Inner: inner, kind: QuasiQuoteKind, marker: "`"}
}

func NewUnquote(inner Datum) Quoted {
	return Quoted{Inner: inner, kind: UnquoteKind, marker: ","}
}

func NewUnquoteSplicing(inner Datum) Quoted {
	return Quoted{Inner: inner, kind: UnquoteSplicingKind, marker: ",@"}
}

func (k Kind) String() string {
	switch k {
	case BooleanKind:
		return "Boolean"
	case CharKind:
		return "Char"
	case NumberKind:
		return "Number"
	case StringKind:
		return "String"
	case IdentifierKind:
		return "Identifier"
	case DirectiveKind:
		return "Directive"
	case CommentKind:
		return "Comment"
	case ListKind:
		return "List"
	case VectorKind:
		return "Vector"
	case ByteVectorKind:
		return "ByteVector"
	case QuoteKind:
		return "Quote"
	case QuasiQuoteKind:
		return "QuasiQuote"
	case UnquoteKind:
		return "Unquote"
	case UnquoteSplicingKind:
		return "UnquoteSplicing"
	default:
		return "Unknown"
	}
}
