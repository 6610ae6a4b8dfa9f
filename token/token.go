// Package token defines the fixed set of lexical tokens produced by the
// lexer. Tokens own no text of their own; their textual content is
// recovered by slicing the source with their span, the same design as
// knakk/rdf's token type, which stores only (typ, line, col, text) and
// leaves text extraction to l.input[l.start:l.pos].
package token

import "github.com/dlthomas/sreader/span"

// Kind identifies the lexical class of a Token.
type Kind int

// The fixed token kind set, per the reader's surface syntax.
const (
	OpenParen Kind = iota
	CloseParen
	Quote
	QuasiQuote
	Unquote
	UnquoteSplicing
	Dot
	OpenVector
	OpenByteVector
	Identifier
	Character
	String
	Numeric
	Boolean
	LineComment
	BlockComment
	DatumComment
	DatumAssign
	DatumRef
	Directive
)

var kindNames = [...]string{
	OpenParen:       "(",
	CloseParen:      ")",
	Quote:           "quote",
	QuasiQuote:      "quasiquote",
	Unquote:         "unquote",
	UnquoteSplicing: "unquote-splicing",
	Dot:             ".",
	OpenVector:      "#(",
	OpenByteVector:  "#u8(",
	Identifier:      "identifier",
	Character:       "character",
	String:          "string",
	Numeric:         "number",
	Boolean:         "boolean",
	LineComment:     "line-comment",
	BlockComment:    "block-comment",
	DatumComment:    "datum-comment",
	DatumAssign:     "datum-label-assign",
	DatumRef:        "datum-label-ref",
	Directive:       "directive",
}

// String renders the kind's canonical name, used in diagnostics.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown-token"
}

// Token is (kind, span); its textual content is recovered from the
// source via Span, not stored on the token itself.
type Token struct {
	Kind Kind
	Span span.Span

	// Label is the decoded datum-label id for DatumAssign and DatumRef
	// tokens; it is unused for every other kind.
	Label uint16
}

// Text returns the token's textual slice of src.
func (t Token) Text(src []byte) string {
	return t.Span.Slice(src)
}

func (t Token) String() string {
	return t.Kind.String()
}
