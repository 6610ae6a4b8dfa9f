// Package diag implements the reader's closed diagnostic taxonomy: one
// error type shared by the lexer and the reader, each value carrying a
// stable numeric code and the narrowest span that implicates the
// offending input. This mirrors knakk/rdf's single unexported errorf/
// unexpected helpers funnelling into one panic-carried error per
// decoder, generalized into an explicit exported sum so callers outside
// this module can discriminate on Kind instead of string-matching a
// message.
package diag

import (
	"fmt"

	"github.com/dlthomas/sreader/span"
	"github.com/dlthomas/sreader/token"
)

// Kind discriminates the closed set of diagnostics this module can
// produce. Codes partition into ranges: input (1-19), lexer (20-39),
// reader (40-59).
type Kind int

const (
	// IoError wraps a failure from the external source loader. It is the
	// only diagnostic for which Stop reports true.
	IoError Kind = iota

	// Lexer diagnostics.
	UnclosedTokenSpecial
	UnclosedTokenString
	UnclosedTokenBlockComment
	InvalidByteVectorPrefix
	InvalidEscapeString
	InvalidBooleanInput
	InvalidCharInput
	InvalidStringInput
	InvalidNumericInput
	InvalidIdentifierInput
	InvalidDirectiveInput
	InvalidDatumLabel

	// Reader diagnostics.
	DuplicateDatumLabel
	UnknownDatumLabel
	InvalidUnicodeValue
	InvalidCharName
	UnexpectedToken
	UnexpectedEOF
)

var codes = [...]uint16{
	IoError:                   1,
	UnclosedTokenSpecial:      20,
	UnclosedTokenString:       21,
	UnclosedTokenBlockComment: 22,
	InvalidByteVectorPrefix:   23,
	InvalidEscapeString:       24,
	InvalidBooleanInput:       25,
	InvalidCharInput:          26,
	InvalidStringInput:        27,
	InvalidNumericInput:       28,
	InvalidIdentifierInput:    29,
	InvalidDirectiveInput:     30,
	InvalidDatumLabel:         31,
	DuplicateDatumLabel:       41,
	UnknownDatumLabel:         42,
	InvalidUnicodeValue:       43,
	InvalidCharName:           44,
	UnexpectedEOF:             45,
	UnexpectedToken:           59,
}

var kindMessages = [...]string{
	IoError:                   "an I/O error occurred",
	UnclosedTokenSpecial:      "incomplete special form",
	UnclosedTokenString:       "unclosed string literal",
	UnclosedTokenBlockComment: "unclosed block comment",
	InvalidByteVectorPrefix:   "invalid or incomplete byte vector prefix",
	InvalidEscapeString:       "invalid, or badly formed, character escape",
	InvalidBooleanInput:       "invalid, or badly formed, boolean input",
	InvalidCharInput:          "invalid, or badly formed, character input",
	InvalidStringInput:        "invalid, or badly formed, string input",
	InvalidNumericInput:       "invalid, or badly formed, numeric input",
	InvalidIdentifierInput:    "invalid, or badly formed, identifier input",
	InvalidDirectiveInput:     "invalid, or badly formed, directive input",
	InvalidDatumLabel:         "invalid datum label assignment or reference",
	DuplicateDatumLabel:       "datum label already defined in this context",
	UnknownDatumLabel:         "datum label not defined in this context",
	InvalidUnicodeValue:       "not a valid Unicode scalar value",
	InvalidCharName:           "unknown character name",
	UnexpectedToken:           "unexpected token",
	UnexpectedEOF:             "unexpected end of input",
}

// ReadContext tags the builder frame active in the reader when an
// UnexpectedToken diagnostic is raised.
type ReadContext int

const (
	TopLevel ReadContext = iota
	InList
	InVector
	InByteVector
)

func (c ReadContext) String() string {
	switch c {
	case TopLevel:
		return "top-level"
	case InList:
		return "list"
	case InVector:
		return "vector"
	case InByteVector:
		return "byte-vector"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by both the lexer and the
// reader.
type Error struct {
	Kind  Kind
	Span  span.Span
	Label uint16      // DuplicateDatumLabel, UnknownDatumLabel
	Token token.Kind  // UnexpectedToken
	Ctx   ReadContext // UnexpectedToken, UnexpectedEOF
	Name  string      // InvalidCharName: the unrecognized name
	Cause error       // IoError: the underlying I/O error
}

func (e *Error) Error() string {
	switch e.Kind {
	case IoError:
		return fmt.Sprintf("%s: %v", kindMessages[e.Kind], e.Cause)
	case DuplicateDatumLabel, UnknownDatumLabel:
		return fmt.Sprintf("%s: #%d= at %s", kindMessages[e.Kind], e.Label, e.Span)
	case InvalidCharName:
		return fmt.Sprintf("%s %q at %s", kindMessages[e.Kind], e.Name, e.Span)
	case UnexpectedToken:
		return fmt.Sprintf("%s %s in %s context at %s", kindMessages[e.Kind], e.Token, e.Ctx, e.Span)
	case UnexpectedEOF:
		return fmt.Sprintf("%s in %s context at %s", kindMessages[e.Kind], e.Ctx, e.Span)
	default:
		return fmt.Sprintf("%s at %s", kindMessages[e.Kind], e.Span)
	}
}

// Unwrap exposes the wrapped I/O error, if any, to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Code returns the diagnostic's stable numeric code.
func (e *Error) Code() uint16 {
	return codes[e.Kind]
}

// Stop reports whether this diagnostic is fatal to the read session. Only
// IoError is fatal; every other kind allows the caller to resynchronize
// and continue reading after the current top-level datum.
func (e *Error) Stop() bool {
	return e.Kind == IoError
}

// Constructors, one per Kind, mirroring rust-ffsr's error.rs free
// functions (io_error, unclosed_special, invalid_numeric_input, ...).

func NewIoError(cause error) *Error {
	return &Error{Kind: IoError, Cause: cause}
}

func UnclosedSpecial(sp span.Span) *Error {
	return &Error{Kind: UnclosedTokenSpecial, Span: sp}
}

func UnclosedString(sp span.Span) *Error {
	return &Error{Kind: UnclosedTokenString, Span: sp}
}

func UnclosedBlockComment(sp span.Span) *Error {
	return &Error{Kind: UnclosedTokenBlockComment, Span: sp}
}

func InvalidByteVectorPrefixAt(sp span.Span) *Error {
	return &Error{Kind: InvalidByteVectorPrefix, Span: sp}
}

func InvalidEscapeStringAt(sp span.Span) *Error {
	return &Error{Kind: InvalidEscapeString, Span: sp}
}

func InvalidBooleanInputAt(sp span.Span) *Error {
	return &Error{Kind: InvalidBooleanInput, Span: sp}
}

func InvalidCharInputAt(sp span.Span) *Error {
	return &Error{Kind: InvalidCharInput, Span: sp}
}

func InvalidCharNameAt(name string, sp span.Span) *Error {
	return &Error{Kind: InvalidCharName, Name: name, Span: sp}
}

func InvalidUnicodeValueAt(sp span.Span) *Error {
	return &Error{Kind: InvalidUnicodeValue, Span: sp}
}

func InvalidStringInputAt(sp span.Span) *Error {
	return &Error{Kind: InvalidStringInput, Span: sp}
}

func InvalidNumericInputAt(sp span.Span) *Error {
	return &Error{Kind: InvalidNumericInput, Span: sp}
}

func InvalidIdentifierInputAt(sp span.Span) *Error {
	return &Error{Kind: InvalidIdentifierInput, Span: sp}
}

func InvalidDirectiveInputAt(sp span.Span) *Error {
	return &Error{Kind: InvalidDirectiveInput, Span: sp}
}

func InvalidDatumLabelAt(sp span.Span) *Error {
	return &Error{Kind: InvalidDatumLabel, Span: sp}
}

func DuplicateDatumLabelAt(label uint16, sp span.Span) *Error {
	return &Error{Kind: DuplicateDatumLabel, Label: label, Span: sp}
}

func UnknownDatumLabelAt(label uint16, sp span.Span) *Error {
	return &Error{Kind: UnknownDatumLabel, Label: label, Span: sp}
}

func UnexpectedTokenAt(tok token.Kind, ctx ReadContext, sp span.Span) *Error {
	return &Error{Kind: UnexpectedToken, Token: tok, Ctx: ctx, Span: sp}
}

func UnexpectedEOFAt(ctx ReadContext, sp span.Span) *Error {
	return &Error{Kind: UnexpectedEOF, Ctx: ctx, Span: sp}
}
