package diag

import (
	"errors"
	"io"
	"testing"

	"github.com/dlthomas/sreader/span"
	"github.com/dlthomas/sreader/token"
	"github.com/stretchr/testify/require"
)

func TestStopOnlyForIoError(t *testing.T) {
	require.True(t, NewIoError(io.ErrUnexpectedEOF).Stop())
	require.False(t, InvalidDatumLabelAt(span.Span{}).Stop())
	require.False(t, UnknownDatumLabelAt(1, span.Span{}).Stop())
}

func TestCodesPartitionByRange(t *testing.T) {
	require.Equal(t, uint16(1), NewIoError(nil).Code())
	require.GreaterOrEqual(t, UnclosedSpecial(span.Span{}).Code(), uint16(20))
	require.Less(t, UnclosedSpecial(span.Span{}).Code(), uint16(40))
	require.GreaterOrEqual(t, DuplicateDatumLabelAt(1, span.Span{}).Code(), uint16(40))
}

func TestIoErrorUnwraps(t *testing.T) {
	cause := io.ErrClosedPipe
	err := NewIoError(cause)
	require.True(t, errors.Is(err, cause))
}

func TestErrorMessagesIncludeContext(t *testing.T) {
	err := DuplicateDatumLabelAt(3, span.Span{})
	require.Contains(t, err.Error(), "#3=")

	err2 := InvalidCharNameAt("bogus", span.Span{})
	require.Contains(t, err2.Error(), "bogus")

	err3 := UnexpectedTokenAt(token.CloseParen, InVector, span.Span{})
	require.Contains(t, err3.Error(), "vector")
}

func TestUnexpectedEOFReportsContext(t *testing.T) {
	err := UnexpectedEOFAt(InList, span.Span{})
	require.False(t, err.Stop())
	require.Contains(t, err.Error(), "list")
	require.GreaterOrEqual(t, err.Code(), uint16(40))
	require.Less(t, err.Code(), uint16(59))
}

func TestReadContextString(t *testing.T) {
	require.Equal(t, "top-level", TopLevel.String())
	require.Equal(t, "unknown", ReadContext(99).String())
}
