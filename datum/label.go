package datum

import (
	"github.com/dlthomas/sreader/diag"
	"github.com/dlthomas/sreader/span"
)

// Labels resolves #n= assignments and #n# references within the scope
// of a single top-level datum. A fresh Labels must be used per
// top-level read; labels never persist across top-level datums.
type Labels struct {
	defined map[uint16]Datum
}

// NewLabels returns an empty label table.
func NewLabels() *Labels {
	return &Labels{defined: make(map[uint16]Datum)}
}

// Define records the datum assigned to label n, failing if n was
// already defined within this scope.
func (l *Labels) Define(n uint16, d Datum, sp span.Span) error {
	if _, ok := l.defined[n]; ok {
		return diag.DuplicateDatumLabelAt(n, sp)
	}
	l.defined[n] = d
	return nil
}

// Resolve looks up a #n# reference, failing if n was never defined in
// this scope.
func (l *Labels) Resolve(n uint16, sp span.Span) (Datum, error) {
	d, ok := l.defined[n]
	if !ok {
		return nil, diag.UnknownDatumLabelAt(n, sp)
	}
	return d, nil
}
