// Package reader implements the push-down automaton that assembles the
// lexer's token stream into datums: quoted forms, nested lists with the
// dotted-pair convention, vectors, byte vectors, datum labels, and
// comment elision. Builder frames and the single "settle" operation
// mirror knakk/rdf's TripleDecoder, generalized from that decoder's
// fixed triple/quad shape (subject, predicate, object with 2-3 token
// lookahead) to an open-ended stack of frames sized by input nesting.
package reader

import (
	"io"
	"strings"

	"github.com/dlthomas/sreader/datum"
	"github.com/dlthomas/sreader/diag"
	"github.com/dlthomas/sreader/lexer"
	"github.com/dlthomas/sreader/number"
	"github.com/dlthomas/sreader/source"
	"github.com/dlthomas/sreader/token"
)

// Reader pulls datums, one top-level value per call to Next, from a
// Source. It is single-threaded and synchronous: there is no
// background work, and the caller may simply stop calling Next to
// release it.
type Reader struct {
	lex    *lexer.Lexer
	src    *source.Source
	stack  []*frame
	labels *datum.Labels

	preserveComments bool
}

// New returns a Reader over src. When preserveComments is true, line
// and block comments are yielded as Comment datums instead of being
// elided.
func New(src *source.Source, preserveComments bool) *Reader {
	return &Reader{
		lex:              lexer.New(src),
		src:              src,
		preserveComments: preserveComments,
	}
}

func (r *Reader) push(f *frame) {
	r.stack = append(r.stack, f)
}

func (r *Reader) pop() *frame {
	n := len(r.stack)
	top := r.stack[n-1]
	r.stack = r.stack[:n-1]
	return top
}

func (r *Reader) context() diag.ReadContext {
	if len(r.stack) == 0 {
		return diag.TopLevel
	}
	return contextOf(r.stack[len(r.stack)-1].kind)
}

// Next reads and returns the next top-level datum, or io.EOF once the
// source is exhausted. Every call resets the label table, since labels
// are scoped to the top-level datum in which they are defined.
func (r *Reader) Next() (datum.Datum, error) {
	r.labels = datum.NewLabels()
	r.stack = nil

	for {
		tok, err := r.lex.Next()
		if err != nil {
			if err == io.EOF {
				if len(r.stack) > 0 {
					top := r.stack[len(r.stack)-1]
					ctx := r.context()
					r.stack = nil
					return nil, diag.UnexpectedEOFAt(ctx, top.span)
				}
				return nil, io.EOF
			}
			r.stack = nil
			return nil, err
		}

		d, err := r.handleToken(tok)
		if err != nil {
			r.stack = nil
			return nil, err
		}
		if d != nil {
			return d, nil
		}
	}
}

func (r *Reader) handleToken(tok token.Token) (datum.Datum, error) {
	switch tok.Kind {
	case token.OpenParen:
		r.push(&frame{kind: frameList, span: tok.Span})
		return nil, nil
	case token.OpenVector:
		r.push(&frame{kind: frameVector, span: tok.Span})
		return nil, nil
	case token.OpenByteVector:
		r.push(&frame{kind: frameByteVector, span: tok.Span})
		return nil, nil
	case token.CloseParen:
		return r.closeFrame(tok)
	case token.Dot:
		return r.handleDot(tok)
	case token.Quote, token.QuasiQuote, token.Unquote, token.UnquoteSplicing:
		r.push(&frame{kind: frameQuote, span: tok.Span, quoteKind: tok.Kind})
		return nil, nil
	case token.DatumComment:
		r.push(&frame{kind: frameDatumComment, span: tok.Span})
		return nil, nil
	case token.DatumAssign:
		r.push(&frame{kind: frameDatumAssign, span: tok.Span, label: tok.Label})
		return nil, nil
	case token.DatumRef:
		d, err := r.labels.Resolve(tok.Label, tok.Span)
		if err != nil {
			return nil, err
		}
		return r.settle(d, tok)
	case token.LineComment, token.BlockComment:
		return r.handleComment(tok)
	case token.Directive:
		text := tok.Text(r.src.Bytes())
		name := strings.TrimPrefix(text, "#!")
		return r.settle(datum.Directive(name), tok)
	case token.Boolean:
		text := tok.Text(r.src.Bytes())
		return r.settle(datum.Boolean(text[1] == 't' || text[1] == 'T'), tok)
	case token.Character:
		text := tok.Text(r.src.Bytes())
		c, err := decodeChar(text[2:], tok.Span)
		if err != nil {
			return nil, err
		}
		return r.settle(datum.Char(c), tok)
	case token.String:
		text := tok.Text(r.src.Bytes())
		s, err := decodeString(text[1:len(text)-1], tok.Span)
		if err != nil {
			return nil, err
		}
		return r.settle(datum.String(s), tok)
	case token.Identifier:
		text := tok.Text(r.src.Bytes())
		isBar := strings.HasPrefix(text, "|")
		s, err := decodeIdentifier(text, isBar, tok.Span)
		if err != nil {
			return nil, err
		}
		return r.settle(datum.Identifier(s), tok)
	case token.Numeric:
		text := tok.Text(r.src.Bytes())
		n, err := number.Parse(text, tok.Span)
		if err != nil {
			return nil, err
		}
		return r.settle(datum.Number{Val: n}, tok)
	default:
		return nil, diag.UnexpectedTokenAt(tok.Kind, r.context(), tok.Span)
	}
}

func (r *Reader) handleComment(tok token.Token) (datum.Datum, error) {
	if !r.preserveComments {
		return nil, nil
	}
	text := tok.Text(r.src.Bytes())
	var body string
	style := datum.LineCommentStyle
	if tok.Kind == token.BlockComment {
		style = datum.BlockCommentStyle
		body = strings.TrimSuffix(strings.TrimPrefix(text, "#|"), "|#")
	} else {
		body = strings.TrimPrefix(text, ";")
	}
	return r.settle(datum.Comment{Text: body, Style: style}, tok)
}

func (r *Reader) handleDot(tok token.Token) (datum.Datum, error) {
	if len(r.stack) == 0 {
		return nil, diag.UnexpectedTokenAt(token.Dot, diag.TopLevel, tok.Span)
	}
	top := r.stack[len(r.stack)-1]
	if top.kind != frameList || len(top.elements) == 0 || top.sawDot {
		return nil, diag.UnexpectedTokenAt(token.Dot, r.context(), tok.Span)
	}
	top.sawDot = true
	return nil, nil
}

func (r *Reader) closeFrame(tok token.Token) (datum.Datum, error) {
	if len(r.stack) == 0 {
		return nil, diag.UnexpectedTokenAt(token.CloseParen, diag.TopLevel, tok.Span)
	}
	top := r.pop()
	switch top.kind {
	case frameList:
		if top.sawDot && top.tail == nil {
			return nil, diag.UnexpectedTokenAt(token.CloseParen, diag.InList, tok.Span)
		}
		return r.settle(datum.List{Elements: top.elements, Tail: top.tail}, tok)
	case frameVector:
		return r.settle(datum.Vector{Elements: top.elements}, tok)
	case frameByteVector:
		return r.settle(datum.ByteVector{Bytes: top.bytes}, tok)
	default:
		r.push(top)
		return nil, diag.UnexpectedTokenAt(token.CloseParen, r.context(), tok.Span)
	}
}

// settle resolves a completed datum into its destination, per §4.3.4:
// dropped by an enclosing DatumComment, registered by an enclosing
// DatumAssign and re-settled, wrapped by an enclosing Quote and
// re-settled, appended to an enclosing composite builder, or yielded to
// the caller when the stack is empty.
func (r *Reader) settle(d datum.Datum, tok token.Token) (datum.Datum, error) {
	for {
		if len(r.stack) == 0 {
			return d, nil
		}
		top := r.stack[len(r.stack)-1]
		switch top.kind {
		case frameDatumComment:
			r.pop()
			return nil, nil
		case frameDatumAssign:
			r.pop()
			if err := r.labels.Define(top.label, d, top.span); err != nil {
				return nil, err
			}
			continue
		case frameQuote:
			r.pop()
			d = wrapQuote(top.quoteKind, d)
			continue
		case frameList:
			if top.sawDot {
				if top.tail != nil {
					return nil, diag.UnexpectedTokenAt(tok.Kind, diag.InList, tok.Span)
				}
				top.tail = d
			} else {
				top.elements = append(top.elements, d)
			}
			return nil, nil
		case frameVector:
			top.elements = append(top.elements, d)
			return nil, nil
		case frameByteVector:
			b, ok := asByte(d)
			if !ok {
				return nil, diag.UnexpectedTokenAt(tok.Kind, diag.InByteVector, tok.Span)
			}
			top.bytes = append(top.bytes, b)
			return nil, nil
		default:
			return d, nil
		}
	}
}
