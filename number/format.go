package number

import (
	"math"
	"strconv"
	"strings"
)

// formatFloat renders a float64 in the reader's canonical textual form:
// ±inf.0 and ±nan.0 for the distinguished values, otherwise a decimal
// literal that always carries a '.' or exponent marker so it round-trips
// as a Flonum rather than a Fixnum (satisfying round-trip law R1).
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+inf.0"
	case math.IsInf(f, -1):
		return "-inf.0"
	case math.IsNaN(f):
		if math.Signbit(f) {
			return "-nan.0"
		}
		return "+nan.0"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
