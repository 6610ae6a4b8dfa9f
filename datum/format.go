package datum

import (
	"fmt"
	"strings"
	"unicode"
)

// charNames maps named characters back to Display text; its inverse is
// the reader's charNames table in reader/decode.go.
var charNames = map[rune]string{
	0x00: "null",
	0x07: "alarm",
	0x08: "backspace",
	0x7f: "delete",
	0x1b: "escape",
	0x0a: "newline",
	0x0d: "return",
	0x20: "space",
	0x09: "tab",
}

func charNameFor(r rune) (string, bool) {
	name, ok := charNames[r]
	return name, ok
}

// escapeString renders a string leaf's contents with the mnemonic and
// hex escapes the lexer itself accepts, so Display output re-lexes to
// the same text (round-trip law R1).
func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&b, `\x%x;`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func escapeIdentifier(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '|':
			b.WriteString(`\|`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&b, `\x%x;`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// peculiarIdentifiers are the handful of non-initial-then-subsequent
// identifiers the grammar admits verbatim.
var peculiarIdentifiers = map[string]bool{
	"+": true, "-": true, "...": true,
}

// needsBarQuoting reports whether an identifier's canonical text must
// be wrapped in |...| to re-lex as the same identifier: anything outside
// the peculiar set whose first character isn't a valid initial, or
// anything containing a subsequent character the lexer would not
// accept. The empty string is also reported true and renders as ||,
// which the lexer rejects, so it does not re-lex.
func needsBarQuoting(s string) bool {
	if s == "" {
		return true
	}
	if peculiarIdentifiers[s] {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentifierInitial(r) {
				return true
			}
			continue
		}
		if !isIdentifierSubsequent(r) {
			return true
		}
	}
	return false
}

func isIdentifierInitial(r rune) bool {
	if unicode.IsLetter(r) {
		return true
	}
	switch r {
	case '!', '$', '%', '&', '*', '/', ':', '<', '=', '>', '?', '^', '_', '~':
		return true
	}
	return r > unicode.MaxASCII && unicode.IsPrint(r)
}

func isIdentifierSubsequent(r rune) bool {
	if isIdentifierInitial(r) {
		return true
	}
	if unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '+', '-', '.', '@':
		return true
	}
	return false
}
