package number

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dlthomas/sreader/diag"
	"github.com/dlthomas/sreader/span"
)

// Parse re-parses the textual slice of a Numeric token into a Number.
// The lexer has already confirmed the slice is shaped like a number; this
// function does the authoritative classification and construction,
// following the prefix-strip/body-dispatch algorithm documented in
// rust-ffsr's numbers/parse.rs.
func Parse(s string, sp span.Span) (Number, error) {
	if s == "" {
		return nil, diag.InvalidNumericInputAt(sp)
	}

	switch s {
	case "+inf.0":
		return Flonum(math.Inf(1)), nil
	case "-inf.0":
		return Flonum(math.Inf(-1)), nil
	case "+nan.0":
		return Flonum(math.NaN()), nil
	case "-nan.0":
		return Flonum(math.Copysign(math.NaN(), -1)), nil
	}

	exactness, radix, body, err := stripPrefix(s, sp)
	if err != nil {
		return nil, err
	}
	if body == "" {
		return nil, diag.InvalidNumericInputAt(sp)
	}

	n, err := parseBody(body, exactness, radix, sp)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// stripPrefix consumes up to one exactness flag (#e/#i) and one radix
// flag (#b/#o/#d/#x), in either order, and returns what remains.
func stripPrefix(s string, sp span.Span) (Exactness, Radix, string, error) {
	exactness := NoExactness
	radix := Decimal
	radixSet := false

	for len(s) >= 2 && s[0] == '#' {
		c := s[1]
		if e, ok := exactnessFromChar(c); ok {
			if exactness != NoExactness {
				return 0, 0, "", diag.InvalidNumericInputAt(sp)
			}
			exactness = e
			s = s[2:]
			continue
		}
		if r, ok := radixFromChar(c); ok {
			if radixSet {
				return 0, 0, "", diag.InvalidNumericInputAt(sp)
			}
			radix = r
			radixSet = true
			s = s[2:]
			continue
		}
		return 0, 0, "", diag.InvalidNumericInputAt(sp)
	}
	return exactness, radix, s, nil
}

// parseBody classifies and builds the Number for a prefix-stripped body.
func parseBody(body string, exactness Exactness, radix Radix, sp span.Span) (Number, error) {
	if idx := rationalSplit(body); idx >= 0 {
		return parseRational(body[:idx], body[idx+1:], exactness, radix, sp)
	}
	if strings.HasSuffix(body, "i") || strings.HasSuffix(body, "I") {
		return parseComplex(body[:len(body)-1], exactness, radix, sp)
	}
	return parseReal(body, exactness, radix, sp)
}

// rationalSplit returns the index of the '/' separating numerator and
// denominator in a rational body, or -1 if body is not shaped like one.
// parseBody checks for it before the trailing 'i' of a complex body, so
// any body containing '/' is parsed as a rational; a complex literal
// with a rational component (e.g. "1/2+1/3i") fails as a malformed
// rational.
func rationalSplit(body string) int {
	return strings.IndexByte(body, '/')
}

func parseRational(numS, denS string, exactness Exactness, radix Radix, sp span.Span) (Number, error) {
	num, ok := new(big.Int).SetString(numS, int(radix))
	if !ok {
		return nil, diag.InvalidNumericInputAt(sp)
	}
	den, ok := new(big.Int).SetString(denS, int(radix))
	if !ok || den.Sign() == 0 {
		return nil, diag.InvalidNumericInputAt(sp)
	}
	r := new(big.Rat).SetFrac(num, den)

	if exactness == Inexact {
		f := new(big.Float).SetRat(r)
		out, _ := f.Float64()
		return Flonum(out), nil
	}
	if r.IsInt() {
		return NewFixnum(new(big.Int).Set(r.Num())), nil
	}
	return NewRatnum(r), nil
}

// parseComplex handles both polar (mag@angle) and Cartesian
// (re+imi/re-imi/+imi/-imi) forms. A Complexnum is always an inexact
// Cartesian Flonum pair: polar magnitude/angle are converted, and
// Cartesian exact components are coerced to float, per the data model
// in §3 of the specification. #e on a complex body is rejected (see
// DESIGN.md's record of this Open Question decision).
func parseComplex(withoutI string, exactness Exactness, radix Radix, sp span.Span) (Number, error) {
	if exactness == Exact {
		return nil, diag.InvalidNumericInputAt(sp)
	}
	if at := strings.IndexByte(withoutI, '@'); at >= 0 {
		if at == 0 || at == len(withoutI)-1 {
			return nil, diag.InvalidNumericInputAt(sp)
		}
		mag, err := parseRealFloat(withoutI[:at], radix, sp)
		if err != nil {
			return nil, err
		}
		ang, err := parseRealFloat(withoutI[at+1:], radix, sp)
		if err != nil {
			return nil, err
		}
		re := mag * math.Cos(ang)
		im := mag * math.Sin(ang)
		return Complexnum{Re: Flonum(re), Im: Flonum(im)}, nil
	}

	realPart, imagPart := splitCartesian(withoutI)
	if imagPart == "" {
		return nil, diag.InvalidNumericInputAt(sp)
	}
	switch imagPart {
	case "+":
		imagPart = "1"
	case "-":
		imagPart = "-1"
	}

	var re float64
	if realPart != "" {
		var err error
		re, err = parseRealFloat(realPart, radix, sp)
		if err != nil {
			return nil, err
		}
	}
	im, err := parseRealFloat(imagPart, radix, sp)
	if err != nil {
		return nil, err
	}
	return Complexnum{Re: Flonum(re), Im: Flonum(im)}, nil
}

// splitCartesian finds the sign that introduces the imaginary component
// of a Cartesian complex body, ignoring a sign that is part of an
// exponent marker (e.g. the '+' in "1e+10").
func splitCartesian(s string) (realPart, imagPart string) {
	for i := len(s) - 1; i > 0; i-- {
		c := s[i]
		if c != '+' && c != '-' {
			continue
		}
		prev := s[i-1]
		if prev == 'e' || prev == 'E' || prev == 'l' || prev == 'L' || prev == '^' {
			continue
		}
		return s[:i], s[i:]
	}
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return "", s
	}
	return "", ""
}

// parseRealFloat parses a bare real body to float64, used for complex
// and polar components, which are always combined into an inexact
// Complexnum regardless of their own exactness.
func parseRealFloat(s string, radix Radix, sp span.Span) (float64, error) {
	n, err := parseReal(s, NoExactness, radix, sp)
	if err != nil {
		return 0, err
	}
	switch v := n.(type) {
	case Fixnum:
		f := new(big.Float).SetInt(v.Val)
		out, _ := f.Float64()
		return out, nil
	case Ratnum:
		f := new(big.Float).SetRat(v.Val)
		out, _ := f.Float64()
		return out, nil
	case Flonum:
		return float64(v), nil
	default:
		return 0, diag.InvalidNumericInputAt(sp)
	}
}

// parseReal parses a signed integer or decimal body (no rational
// separator, no complex marker) honoring radix and an optional
// exactness coercion.
func parseReal(s string, exactness Exactness, radix Radix, sp span.Span) (Number, error) {
	if s == "" {
		return nil, diag.InvalidNumericInputAt(sp)
	}
	isFloatShape := radix == Decimal && containsFloatMarker(s)

	if !isFloatShape {
		i, ok := new(big.Int).SetString(s, int(radix))
		if !ok {
			return nil, diag.InvalidNumericInputAt(sp)
		}
		switch exactness {
		case NoExactness, Exact:
			return NewFixnum(i), nil
		case Inexact:
			f := new(big.Float).SetInt(i)
			out, _ := f.Float64()
			return Flonum(out), nil
		}
	}

	if radix != Decimal {
		return nil, diag.InvalidNumericInputAt(sp)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, diag.InvalidNumericInputAt(sp)
	}
	switch exactness {
	case NoExactness, Inexact:
		return Flonum(f), nil
	case Exact:
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			return nil, diag.InvalidNumericInputAt(sp)
		}
		if r.IsInt() {
			return NewFixnum(new(big.Int).Set(r.Num())), nil
		}
		return NewRatnum(r), nil
	}
	return nil, diag.InvalidNumericInputAt(sp)
}

func containsFloatMarker(s string) bool {
	return strings.ContainsAny(s, ".eE")
}
