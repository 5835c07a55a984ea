// Package values defines the SYMLS value kinds and the resolved reference
// type returned by the variable resolver.
package values

// Kind tags a resolved reference with the concrete type of storage it
// points at. KindNotFound is the resolver's "no such variable" result.
type Kind int

const (
	KindNotFound Kind = iota - 1
	KindInteger
	KindText
	KindReal
)

// Ref is a resolved reference to a scalar slot, a plain variable or one
// element of an array. Only the field matching Kind is valid. It is a
// mutable handle the caller can both read and write through without
// re-resolving the name.
type Ref struct {
	Kind Kind
	Int  *int64
	Text *string
	Real *float64
}

// NotFound is the canonical "no such variable" reference.
var NotFound = Ref{Kind: KindNotFound}

// Found reports whether the resolver located a variable.
func (r Ref) Found() bool { return r.Kind != KindNotFound }

// GetInt reads through an integer reference, widening a Real by
// truncation as the integer evaluator's coercion rule requires.
func (r Ref) GetInt() (int64, bool) {
	switch r.Kind {
	case KindInteger:
		return *r.Int, true
	case KindReal:
		return int64(*r.Real), true
	default:
		return 0, false
	}
}

// GetReal reads through a real reference, widening an Integer.
func (r Ref) GetReal() (float64, bool) {
	switch r.Kind {
	case KindReal:
		return *r.Real, true
	case KindInteger:
		return float64(*r.Int), true
	default:
		return 0, false
	}
}

// GetText reads through a text reference. Only Text references qualify;
// the text evaluator does not widen other kinds.
func (r Ref) GetText() (string, bool) {
	if r.Kind != KindText {
		return "", false
	}
	return *r.Text, true
}
