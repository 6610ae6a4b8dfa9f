package number

import (
	"math/big"
	"testing"

	"github.com/dlthomas/sreader/span"
	"github.com/stretchr/testify/require"
)

func sp() span.Span {
	return span.Span{}
}

func TestParseFixnum(t *testing.T) {
	n, err := Parse("12345678901234567890", sp())
	require.NoError(t, err)
	fx, ok := n.(Fixnum)
	require.True(t, ok)
	require.True(t, fx.Exact())
	want, _ := new(big.Int).SetString("12345678901234567890", 10)
	require.Equal(t, 0, fx.Val.Cmp(want))
}

func TestParseNegativeFixnum(t *testing.T) {
	n, err := Parse("-42", sp())
	require.NoError(t, err)
	require.Equal(t, "-42", n.String())
}

func TestParseRatnumReduces(t *testing.T) {
	n, err := Parse("4/8", sp())
	require.NoError(t, err)
	r, ok := n.(Ratnum)
	require.True(t, ok)
	require.Equal(t, "1/2", r.String())
}

func TestParseRatnumThatIsWholeBecomesFixnum(t *testing.T) {
	n, err := Parse("6/3", sp())
	require.NoError(t, err)
	_, ok := n.(Fixnum)
	require.True(t, ok)
	require.Equal(t, "2", n.String())
}

func TestParseFlonum(t *testing.T) {
	n, err := Parse("3.14", sp())
	require.NoError(t, err)
	fl, ok := n.(Flonum)
	require.True(t, ok)
	require.False(t, fl.Exact())
	require.Equal(t, "3.14", fl.String())
}

func TestParseInfAndNan(t *testing.T) {
	for _, tc := range []string{"+inf.0", "-inf.0", "+nan.0", "-nan.0"} {
		n, err := Parse(tc, sp())
		require.NoError(t, err)
		require.Equal(t, tc, n.String())
	}
}

func TestParseHexPrefix(t *testing.T) {
	n, err := Parse("#xff", sp())
	require.NoError(t, err)
	require.Equal(t, "255", n.String())
}

func TestParseBinaryPrefix(t *testing.T) {
	n, err := Parse("#b101", sp())
	require.NoError(t, err)
	require.Equal(t, "5", n.String())
}

func TestParseExactCoercesInexactToRational(t *testing.T) {
	n, err := Parse("#e1.5", sp())
	require.NoError(t, err)
	r, ok := n.(Ratnum)
	require.True(t, ok)
	require.Equal(t, "3/2", r.String())
}

func TestParseInexactPrefixCoercesExactToFlonum(t *testing.T) {
	n, err := Parse("#i1/2", sp())
	require.NoError(t, err)
	fl, ok := n.(Flonum)
	require.True(t, ok)
	require.Equal(t, 0.5, float64(fl))
}

func TestParseCartesianComplex(t *testing.T) {
	n, err := Parse("1+2i", sp())
	require.NoError(t, err)
	c, ok := n.(Complexnum)
	require.True(t, ok)
	require.Equal(t, Flonum(1), c.Re)
	require.Equal(t, Flonum(2), c.Im)
}

func TestParseBareSignComplex(t *testing.T) {
	n, err := Parse("+i", sp())
	require.NoError(t, err)
	c, ok := n.(Complexnum)
	require.True(t, ok)
	require.Equal(t, Flonum(0), c.Re)
	require.Equal(t, Flonum(1), c.Im)
}

func TestParsePolarComplex(t *testing.T) {
	n, err := Parse("1@0i", sp())
	require.NoError(t, err)
	c, ok := n.(Complexnum)
	require.True(t, ok)
	require.InDelta(t, 1.0, float64(c.Re), 1e-9)
	require.InDelta(t, 0.0, float64(c.Im), 1e-9)
}

func TestParseExactComplexRejected(t *testing.T) {
	_, err := Parse("#e1+2i", sp())
	require.Error(t, err)
}

func TestParseDuplicateExactnessFails(t *testing.T) {
	for _, tc := range []string{"#e#i0.0", "#i#e0"} {
		_, err := Parse(tc, sp())
		require.Error(t, err, tc)
	}
}

func TestParseNonDecimalFloatFails(t *testing.T) {
	_, err := Parse("#x1.5", sp())
	require.Error(t, err)
}

func TestParseEmptyFails(t *testing.T) {
	_, err := Parse("", sp())
	require.Error(t, err)
}

func TestParseZeroDenominatorFails(t *testing.T) {
	_, err := Parse("1/0", sp())
	require.Error(t, err)
}

func TestFormatFloatPreservesFlonumShape(t *testing.T) {
	require.Equal(t, "5.0", Flonum(5).String())
	require.Equal(t, "5", Fixnum{Val: big.NewInt(5)}.String())
}
