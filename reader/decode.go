package reader

import (
	"strconv"
	"strings"

	"github.com/dlthomas/sreader/diag"
	"github.com/dlthomas/sreader/span"
)

// charNames is the inverse of datum's charNames table: the lexically
// recognized long-form character names, per §4.2.4.
var charNames = map[string]rune{
	"alarm":     0x07,
	"backspace": 0x08,
	"delete":    0x7f,
	"escape":    0x1b,
	"newline":   0x0a,
	"null":      0x00,
	"return":    0x0d,
	"space":     0x20,
	"tab":       0x09,
}

// decodeChar interprets the text of a Character token (everything after
// the leading "#\"): a single codepoint, a named sequence, or a hex
// escape "x<hex>+;".
func decodeChar(text string, sp span.Span) (rune, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0, diag.InvalidCharInputAt(sp)
	}
	if len(runes) == 1 {
		return runes[0], nil
	}
	if (runes[0] == 'x' || runes[0] == 'X') && isHexEscapeBody(runes[1:]) {
		digits := string(runes[1:])
		digits = strings.TrimSuffix(digits, ";")
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return 0, diag.InvalidUnicodeValueAt(sp)
		}
		if !validScalarValue(rune(v)) {
			return 0, diag.InvalidUnicodeValueAt(sp)
		}
		return rune(v), nil
	}
	name := string(runes)
	r, ok := charNames[strings.ToLower(name)]
	if !ok {
		return 0, diag.InvalidCharNameAt(name, sp)
	}
	return r, nil
}

func isHexEscapeBody(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	body := runes
	if body[len(body)-1] == ';' {
		body = body[:len(body)-1]
	}
	if len(body) == 0 {
		return false
	}
	for _, r := range body {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func validScalarValue(r rune) bool {
	if r < 0 || r > 0x10FFFF {
		return false
	}
	if r >= 0xD800 && r <= 0xDFFF {
		return false
	}
	return true
}

// decodeString interprets the text between a String token's quotes,
// resolving mnemonic escapes, hex escapes, and line-continuations.
func decodeString(text string, sp span.Span) (string, error) {
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' {
			b.WriteRune(r)
			continue
		}
		i++
		if i >= len(runes) {
			return "", diag.InvalidStringInputAt(sp)
		}
		e := runes[i]
		switch e {
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '"', '\\', '|':
			b.WriteRune(e)
		case 'x', 'X':
			j := i + 1
			for j < len(runes) && isHexDigit(runes[j]) {
				j++
			}
			if j == i+1 || j >= len(runes) || runes[j] != ';' {
				return "", diag.InvalidEscapeStringAt(sp)
			}
			v, err := strconv.ParseUint(string(runes[i+1:j]), 16, 32)
			if err != nil || !validScalarValue(rune(v)) {
				return "", diag.InvalidUnicodeValueAt(sp)
			}
			b.WriteRune(rune(v))
			i = j
		default:
			if isLineContinuation(e) {
				i = skipLineContinuation(runes, i)
				continue
			}
			return "", diag.InvalidEscapeStringAt(sp)
		}
	}
	return b.String(), nil
}

func isLineContinuation(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// skipLineContinuation consumes the intraline-whitespace/newline/
// intraline-whitespace run that starts at runes[i], just after the
// backslash, and returns the index of its last consumed rune. At most
// one line ending (\r\n, \r or \n) is consumed; when the run holds no
// line ending, only its intraline whitespace is consumed.
func skipLineContinuation(runes []rune, i int) int {
	j := i
	for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
		j++
	}
	switch {
	case j+1 < len(runes) && runes[j] == '\r' && runes[j+1] == '\n':
		j += 2
	case j < len(runes) && (runes[j] == '\r' || runes[j] == '\n'):
		j++
	}
	for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
		j++
	}
	return j - 1
}

// decodeIdentifier interprets an Identifier token's text. isBarQuoted
// indicates the |...| form, whose interior must have its surrounding
// bars stripped and escapes resolved; the plain forms pass through
// unchanged (the lexer only accepts well-formed characters for them).
func decodeIdentifier(text string, isBarQuoted bool, sp span.Span) (string, error) {
	if !isBarQuoted {
		return text, nil
	}
	inner := text[1 : len(text)-1]
	var b strings.Builder
	runes := []rune(inner)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' {
			b.WriteRune(r)
			continue
		}
		i++
		if i >= len(runes) {
			return "", diag.InvalidIdentifierInputAt(sp)
		}
		e := runes[i]
		switch e {
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '"', '\\', '|':
			b.WriteRune(e)
		case 'x', 'X':
			j := i + 1
			for j < len(runes) && isHexDigit(runes[j]) {
				j++
			}
			if j == i+1 || j >= len(runes) || runes[j] != ';' {
				return "", diag.InvalidIdentifierInputAt(sp)
			}
			v, err := strconv.ParseUint(string(runes[i+1:j]), 16, 32)
			if err != nil || !validScalarValue(rune(v)) {
				return "", diag.InvalidUnicodeValueAt(sp)
			}
			b.WriteRune(rune(v))
			i = j
		default:
			return "", diag.InvalidIdentifierInputAt(sp)
		}
	}
	return b.String(), nil
}
