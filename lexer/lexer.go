// Package lexer implements the character-indexed, Mealy-style token
// scanner described by the reader's lexical grammar: terminal tokens,
// identifiers in their three forms, characters, strings, numerics,
// comments, directives, and datum labels. It is grounded on knakk/rdf's
// lex.go state-machine lexer, generalized from that lexer's
// goroutine-plus-channel token pump to a direct, synchronous pull: each
// call to Next runs the state machine to completion and returns one
// token, so a caller that stops pulling early leaks nothing (the
// teacher's lexer, in contrast, would leak its running goroutine if a
// decoder stopped before EOF).
//
// The lexer stays permissive where the specification allows it:
// numeric and identifier atoms are scanned by shape and handed to the
// reader's textual sub-parsers (number.Parse and the character/string/
// identifier escape decoders) for authoritative classification, the
// same division of labor knakk/rdf uses between its lexer and its
// decoder's parseLiteral.
package lexer

import (
	"io"

	"github.com/dlthomas/sreader/diag"
	"github.com/dlthomas/sreader/source"
	"github.com/dlthomas/sreader/span"
	"github.com/dlthomas/sreader/token"
)

// Lexer scans tokens from a Source. It holds no state across calls to
// Next beyond the source's own cursor, since every token is recognized
// start-to-finish within one call.
type Lexer struct {
	src *source.Source
}

// New returns a Lexer reading from src.
func New(src *source.Source) *Lexer {
	return &Lexer{src: src}
}

func (l *Lexer) pos() span.Position {
	return l.src.Pos()
}

func (l *Lexer) spanFrom(start span.Position) span.Span {
	return span.New(start, l.pos())
}

func (l *Lexer) next() source.Triple {
	return l.src.Next()
}

func (l *Lexer) peek() source.Triple {
	return l.src.Peek()
}

func (l *Lexer) pushBack(t source.Triple) {
	l.src.PushBack(t)
}

// tryConsumeCI attempts to consume word case-insensitively. On a
// mismatch it restores every triple it looked at, leaving the source
// cursor untouched.
func (l *Lexer) tryConsumeCI(word string) bool {
	consumed := make([]source.Triple, 0, len(word))
	for _, w := range word {
		t := l.next()
		consumed = append(consumed, t)
		if t.R < 0 || lower(t.R) != lower(w) {
			for i := len(consumed) - 1; i >= 0; i-- {
				l.pushBack(consumed[i])
			}
			return false
		}
	}
	return true
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// Next scans and returns the next token, skipping whitespace gaps
// first. It returns io.EOF once the source is exhausted.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()
	start := l.pos()
	t := l.next()

	switch {
	case t.R == source.EOF:
		return token.Token{}, io.EOF
	case t.R == '(':
		return token.Token{Kind: token.OpenParen, Span: l.spanFrom(start)}, nil
	case t.R == ')':
		return token.Token{Kind: token.CloseParen, Span: l.spanFrom(start)}, nil
	case t.R == '\'':
		return token.Token{Kind: token.Quote, Span: l.spanFrom(start)}, nil
	case t.R == '`':
		return token.Token{Kind: token.QuasiQuote, Span: l.spanFrom(start)}, nil
	case t.R == ',':
		if l.peek().R == '@' {
			l.next()
			return token.Token{Kind: token.UnquoteSplicing, Span: l.spanFrom(start)}, nil
		}
		return token.Token{Kind: token.Unquote, Span: l.spanFrom(start)}, nil
	case t.R == '"':
		return l.lexString(start)
	case t.R == '|':
		return l.lexBarIdentifier(start)
	case t.R == ';':
		return l.lexLineComment(start)
	case t.R == '#':
		return l.lexSpecial(start)
	case t.R == '.':
		if isDelimiter(l.peek().R) {
			return token.Token{Kind: token.Dot, Span: l.spanFrom(start)}, nil
		}
		return l.lexAtom(start)
	case isInitial(t.R), isASCIIDigit(t.R), t.R == '+', t.R == '-':
		return l.lexAtom(start)
	default:
		return token.Token{}, diag.InvalidIdentifierInputAt(l.spanFrom(start))
	}
}

func (l *Lexer) skipWhitespace() {
	for {
		t := l.peek()
		if !isWhitespace(t.R) {
			return
		}
		l.next()
	}
}

// lexAtom consumes the remainder of an identifier or numeric atom whose
// first character has already been consumed, then classifies the whole
// span by shape.
func (l *Lexer) lexAtom(start span.Position) (token.Token, error) {
	for {
		p := l.peek()
		if !isSubsequent(p.R) {
			break
		}
		l.next()
	}
	sp := l.spanFrom(start)
	text := sp.Slice(l.src.Bytes())
	kind := token.Identifier
	if looksLikeNumber(text) {
		kind = token.Numeric
	}
	return token.Token{Kind: kind, Span: sp}, nil
}

func (l *Lexer) lexLineComment(start span.Position) (token.Token, error) {
	for {
		p := l.peek()
		if p.R == '\n' || p.R == source.EOF {
			break
		}
		l.next()
	}
	return token.Token{Kind: token.LineComment, Span: l.spanFrom(start)}, nil
}

func (l *Lexer) lexString(start span.Position) (token.Token, error) {
	for {
		t := l.next()
		switch {
		case t.R == source.EOF:
			return token.Token{}, diag.UnclosedString(l.spanFrom(start))
		case t.R == '"':
			return token.Token{Kind: token.String, Span: l.spanFrom(start)}, nil
		case t.R == '\\':
			if err := l.lexStringEscape(start); err != nil {
				return token.Token{}, err
			}
		}
	}
}

func (l *Lexer) lexStringEscape(start span.Position) error {
	e := l.next()
	if e.R == source.EOF {
		return diag.UnclosedString(l.spanFrom(start))
	}
	switch {
	case e.R == 'x' || e.R == 'X':
		return l.lexHexEscapeTail(start)
	case isIntralineWhitespace(e.R) || e.R == '\n' || e.R == '\r':
		for isWhitespace(l.peek().R) {
			l.next()
		}
	}
	return nil
}

// lexHexEscapeTail consumes the "<hex>+;" that follows a \x mnemonic,
// used identically by strings and bar-quoted identifiers.
func (l *Lexer) lexHexEscapeTail(start span.Position) error {
	n := 0
	for isHexDigit(l.peek().R) {
		l.next()
		n++
	}
	if n == 0 || l.peek().R != ';' {
		return diag.InvalidEscapeStringAt(l.spanFrom(start))
	}
	l.next()
	return nil
}

func (l *Lexer) lexBarIdentifier(start span.Position) (token.Token, error) {
	for {
		t := l.next()
		switch {
		case t.R == source.EOF:
			return token.Token{}, diag.InvalidIdentifierInputAt(l.spanFrom(start))
		case t.R == '|':
			sp := l.spanFrom(start)
			if sp.CharLen() == 2 {
				return token.Token{}, diag.InvalidIdentifierInputAt(sp)
			}
			return token.Token{Kind: token.Identifier, Span: sp}, nil
		case t.R == '\\':
			e := l.next()
			if e.R == source.EOF {
				return token.Token{}, diag.InvalidIdentifierInputAt(l.spanFrom(start))
			}
			if e.R == 'x' || e.R == 'X' {
				if err := l.lexHexEscapeTail(start); err != nil {
					return token.Token{}, diag.InvalidIdentifierInputAt(l.spanFrom(start))
				}
			}
		}
	}
}

func (l *Lexer) lexSpecial(start span.Position) (token.Token, error) {
	p := l.peek()
	switch {
	case p.R == '(':
		l.next()
		return token.Token{Kind: token.OpenVector, Span: l.spanFrom(start)}, nil
	case p.R == 'u' || p.R == 'U':
		return l.lexByteVectorPrefix(start)
	case p.R == 't' || p.R == 'T':
		l.next()
		return l.lexBooleanLong(start, "rue")
	case p.R == 'f' || p.R == 'F':
		l.next()
		return l.lexBooleanLong(start, "alse")
	case p.R == '\\':
		l.next()
		return l.lexCharacter(start)
	case p.R == ';':
		l.next()
		return token.Token{Kind: token.DatumComment, Span: l.spanFrom(start)}, nil
	case p.R == '|':
		l.next()
		return l.lexBlockComment(start)
	case p.R == '!':
		l.next()
		return l.lexDirective(start)
	case isASCIIDigit(p.R):
		return l.lexDatumLabel(start)
	case isPrefixFlag(p.R):
		return l.lexNumberPrefixed(start)
	default:
		return token.Token{}, diag.UnclosedSpecial(l.spanFrom(start))
	}
}

func (l *Lexer) lexBooleanLong(start span.Position, longSuffix string) (token.Token, error) {
	if isDelimiter(l.peek().R) {
		return token.Token{Kind: token.Boolean, Span: l.spanFrom(start)}, nil
	}
	if l.tryConsumeCI(longSuffix) && isDelimiter(l.peek().R) {
		return token.Token{Kind: token.Boolean, Span: l.spanFrom(start)}, nil
	}
	return token.Token{}, diag.InvalidBooleanInputAt(l.spanFrom(start))
}

func (l *Lexer) lexByteVectorPrefix(start span.Position) (token.Token, error) {
	l.next() // 'u'/'U'
	if t := l.next(); t.R != '8' {
		return token.Token{}, diag.InvalidByteVectorPrefixAt(l.spanFrom(start))
	}
	if t := l.next(); t.R != '(' {
		return token.Token{}, diag.InvalidByteVectorPrefixAt(l.spanFrom(start))
	}
	return token.Token{Kind: token.OpenByteVector, Span: l.spanFrom(start)}, nil
}

// lexCharacter scans a #\... token per the grammar: exactly one
// codepoint, or a run of identifier-subsequent characters forming a
// named or hex-escaped character. Authoritative decoding (name lookup,
// hex value validation) happens in the reader's character sub-parser.
func (l *Lexer) lexCharacter(start span.Position) (token.Token, error) {
	c0 := l.next()
	if c0.R == source.EOF {
		return token.Token{}, diag.UnclosedSpecial(l.spanFrom(start))
	}
	isHexLead := c0.R == 'x' || c0.R == 'X'
	allHex := isHexLead
	sawDigitAfterX := false
	for {
		p := l.peek()
		if !isSubsequent(p.R) {
			break
		}
		l.next()
		if isHexLead {
			if isHexDigit(p.R) {
				sawDigitAfterX = true
			} else {
				allHex = false
			}
		}
	}
	if isHexLead && allHex && sawDigitAfterX && l.peek().R == ';' {
		l.next()
	}
	return token.Token{Kind: token.Character, Span: l.spanFrom(start)}, nil
}

func (l *Lexer) lexBlockComment(start span.Position) (token.Token, error) {
	depth := 1
	for depth > 0 {
		t := l.next()
		switch {
		case t.R == source.EOF:
			return token.Token{}, diag.UnclosedBlockComment(l.spanFrom(start))
		case t.R == '#' && l.peek().R == '|':
			l.next()
			depth++
		case t.R == '|' && l.peek().R == '#':
			l.next()
			depth--
		}
	}
	return token.Token{Kind: token.BlockComment, Span: l.spanFrom(start)}, nil
}

func (l *Lexer) lexDirective(start span.Position) (token.Token, error) {
	if !isASCIILetter(l.peek().R) {
		return token.Token{}, diag.InvalidDirectiveInputAt(l.spanFrom(start))
	}
	l.next()
	for {
		p := l.peek()
		if !isASCIILetter(p.R) && p.R != '-' {
			break
		}
		l.next()
	}
	return token.Token{Kind: token.Directive, Span: l.spanFrom(start)}, nil
}

func (l *Lexer) lexDatumLabel(start span.Position) (token.Token, error) {
	n := 0
	digits := make([]byte, 0, 5)
	for isASCIIDigit(l.peek().R) {
		t := l.next()
		digits = append(digits, byte(t.R))
		n++
	}
	if n == 0 {
		return token.Token{}, diag.InvalidDatumLabelAt(l.spanFrom(start))
	}
	value, ok := parseUint16(digits)
	if !ok {
		return token.Token{}, diag.InvalidDatumLabelAt(l.spanFrom(start))
	}
	t := l.next()
	var kind token.Kind
	switch t.R {
	case '=':
		kind = token.DatumAssign
	case '#':
		kind = token.DatumRef
	default:
		return token.Token{}, diag.InvalidDatumLabelAt(l.spanFrom(start))
	}
	return token.Token{Kind: kind, Span: l.spanFrom(start), Label: value}, nil
}

func parseUint16(digits []byte) (uint16, bool) {
	var v uint32
	for _, d := range digits {
		v = v*10 + uint32(d-'0')
		if v > 0xFFFF {
			return 0, false
		}
	}
	return uint16(v), true
}

// lexNumberPrefixed scans a #e/#i/#b/#o/#d/#x-prefixed numeric token in
// full, including a possible second prefix flag and the real body. It
// does not reject an invalid combination of flags (e.g. two exactness
// flags): that is the numeric sub-parser's job, consistent with the
// lexer staying permissive and the reader owning authoritative
// classification.
func (l *Lexer) lexNumberPrefixed(start span.Position) (token.Token, error) {
	l.next() // first flag char
	for {
		hash := l.peek()
		if hash.R != '#' {
			break
		}
		t := l.next()
		flag := l.peek()
		if isPrefixFlag(flag.R) {
			l.next()
			continue
		}
		l.pushBack(t)
		break
	}
	for isSubsequent(l.peek().R) {
		l.next()
	}
	return token.Token{Kind: token.Numeric, Span: l.spanFrom(start)}, nil
}
