package reader

import (
	"github.com/dlthomas/sreader/datum"
	"github.com/dlthomas/sreader/diag"
	"github.com/dlthomas/sreader/number"
	"github.com/dlthomas/sreader/span"
	"github.com/dlthomas/sreader/token"
)

type frameKind int

const (
	frameList frameKind = iota
	frameVector
	frameByteVector
	frameQuote
	frameDatumComment
	frameDatumAssign
)

// frame is a builder accumulating a partial composite or wrapper value,
// per the reader's push-down automaton (§4.3.1 of the builder-frame
// design).
type frame struct {
	kind frameKind
	span span.Span

	elements []datum.Datum // frameList, frameVector
	tail     datum.Datum   // frameList, after a Dot
	sawDot   bool          // frameList

	bytes []byte // frameByteVector

	quoteKind token.Kind // frameQuote

	label uint16 // frameDatumAssign
}

func contextOf(k frameKind) diag.ReadContext {
	switch k {
	case frameList:
		return diag.InList
	case frameVector:
		return diag.InVector
	case frameByteVector:
		return diag.InByteVector
	default:
		return diag.TopLevel
	}
}

func wrapQuote(kind token.Kind, inner datum.Datum) datum.Datum {
	switch kind {
	case token.QuasiQuote:
		return datum.NewQuasiQuote(inner)
	case token.Unquote:
		return datum.NewUnquote(inner)
	case token.UnquoteSplicing:
		return datum.NewUnquoteSplicing(inner)
	default:
		return datum.NewQuote(inner)
	}
}

// asByte reports whether d is a Fixnum in [0, 255], the only legal
// element type inside a byte-vector frame.
func asByte(d datum.Datum) (byte, bool) {
	n, ok := d.(datum.Number)
	if !ok {
		return 0, false
	}
	fx, ok := n.Val.(number.Fixnum)
	if !ok || !fx.Val.IsInt64() {
		return 0, false
	}
	v := fx.Val.Int64()
	if v < 0 || v > 255 {
		return 0, false
	}
	return byte(v), true
}
