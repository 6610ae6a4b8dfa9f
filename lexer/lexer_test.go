package lexer

import (
	"io"
	"testing"

	"github.com/dlthomas/sreader/source"
	"github.com/dlthomas/sreader/token"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) ([]token.Token, []string, error) {
	t.Helper()
	s := source.New("<string>", []byte(src))
	l := New(s)
	var toks []token.Token
	var texts []string
	for {
		tok, err := l.Next()
		if err == io.EOF {
			return toks, texts, nil
		}
		if err != nil {
			return toks, texts, err
		}
		toks = append(toks, tok)
		texts = append(texts, tok.Text(s.Bytes()))
	}
}

func TestTerminalTokens(t *testing.T) {
	toks, texts, err := scanAll(t, "( ) ' ` . ,@ ,")
	require.NoError(t, err)
	wantKinds := []token.Kind{
		token.OpenParen, token.CloseParen, token.Quote, token.QuasiQuote,
		token.Dot, token.UnquoteSplicing, token.Unquote,
	}
	require.Len(t, toks, len(wantKinds))
	for i, k := range wantKinds {
		require.Equal(t, k, toks[i].Kind, "token %d (%q)", i, texts[i])
	}
}

func TestOpenVectorAndByteVector(t *testing.T) {
	toks, _, err := scanAll(t, "#( #u8(")
	require.NoError(t, err)
	require.Equal(t, token.OpenVector, toks[0].Kind)
	require.Equal(t, token.OpenByteVector, toks[1].Kind)
}

func TestInvalidByteVectorPrefix(t *testing.T) {
	_, _, err := scanAll(t, "#u7(")
	require.Error(t, err)
}

func TestBooleans(t *testing.T) {
	toks, texts, err := scanAll(t, "#t #true #f #false #T #FALSE")
	require.NoError(t, err)
	for i, tok := range toks {
		require.Equal(t, token.Boolean, tok.Kind, texts[i])
	}
}

func TestInvalidBoolean(t *testing.T) {
	_, _, err := scanAll(t, "#truthy")
	require.Error(t, err)
}

func TestIdentifiers(t *testing.T) {
	toks, texts, err := scanAll(t, "abc foo-bar? ->string +soup+ ... + - |a b|")
	require.NoError(t, err)
	for i, tok := range toks {
		require.Equal(t, token.Identifier, tok.Kind, texts[i])
	}
	require.Equal(t, "|a b|", texts[len(texts)-1])
}

func TestEmptyBarIdentifierFails(t *testing.T) {
	_, _, err := scanAll(t, "||")
	require.Error(t, err)
}

func TestNumericAtoms(t *testing.T) {
	toks, texts, err := scanAll(t, "123 -42 3.14 1/2 1+2i +inf.0 -nan.0 #xff #e1.5 #i1/2")
	require.NoError(t, err)
	for i, tok := range toks {
		require.Equal(t, token.Numeric, tok.Kind, texts[i])
	}
}

func TestLoneHashAtEOFFails(t *testing.T) {
	_, _, err := scanAll(t, "#")
	require.Error(t, err)
}

func TestCharacterLiteral(t *testing.T) {
	toks, texts, err := scanAll(t, `#\a #\newline #\x00fb;`)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	require.Equal(t, `#\a`, texts[0])
	require.Equal(t, `#\newline`, texts[1])
	require.Equal(t, `#\x00fb;`, texts[2])
}

func TestStringLiteral(t *testing.T) {
	toks, texts, err := scanAll(t, `"hello" "hel\x00fd;lo" "a\"b"`)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	for i := range toks {
		require.Equal(t, token.String, toks[i].Kind, texts[i])
	}
}

func TestUnclosedString(t *testing.T) {
	_, _, err := scanAll(t, `"abc`)
	require.Error(t, err)
}

func TestLineComment(t *testing.T) {
	toks, _, err := scanAll(t, "; a comment\n(a)")
	require.NoError(t, err)
	require.Equal(t, token.LineComment, toks[0].Kind)
	require.Equal(t, token.OpenParen, toks[1].Kind)
}

func TestNestedBlockComment(t *testing.T) {
	toks, _, err := scanAll(t, "#| outer #| inner |# still outer |# (a)")
	require.NoError(t, err)
	require.Equal(t, token.BlockComment, toks[0].Kind)
	require.Equal(t, token.OpenParen, toks[1].Kind)
}

func TestUnclosedBlockComment(t *testing.T) {
	_, _, err := scanAll(t, "#| never closes")
	require.Error(t, err)
}

func TestDatumComment(t *testing.T) {
	toks, _, err := scanAll(t, "#;99")
	require.NoError(t, err)
	require.Equal(t, token.DatumComment, toks[0].Kind)
	require.Equal(t, token.Numeric, toks[1].Kind)
}

func TestDirective(t *testing.T) {
	toks, texts, err := scanAll(t, "#!fold-case")
	require.NoError(t, err)
	require.Equal(t, token.Directive, toks[0].Kind)
	require.Equal(t, "#!fold-case", texts[0])
}

func TestDatumLabels(t *testing.T) {
	toks, _, err := scanAll(t, "#1=99 #1#")
	require.NoError(t, err)
	require.Equal(t, token.DatumAssign, toks[0].Kind)
	require.Equal(t, uint16(1), toks[0].Label)
	require.Equal(t, token.DatumRef, toks[2].Kind)
	require.Equal(t, uint16(1), toks[2].Label)
}

func TestDatumLabelOverflowFails(t *testing.T) {
	_, _, err := scanAll(t, "#99999999=1")
	require.Error(t, err)
}

func TestEmptyInputYieldsNoTokens(t *testing.T) {
	toks, _, err := scanAll(t, "")
	require.NoError(t, err)
	require.Empty(t, toks)
}
