// Package trace models the ordered step record produced by key derivation
// and the formats it travels in.
package trace

import (
	"errors"
	"math/big"

	"github.com/san-kum/rodopios/internal/alphabet"
)

var (
	// ErrEmptyInput indicates a source with no trace data at all.
	ErrEmptyInput = errors.New("trace: empty input")

	// ErrUnsupportedFormat indicates a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("trace: unsupported format")
)

// Point is a curve point in hex form.
type Point struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// Metadata is carried with a step untouched. Pointer fields are nil when
// the producer had no value (point at infinity).
type Metadata struct {
	Bit       string
	Operation string
	Point     *Point
	Angle     *int
	Rodopios  *int
}

// Step is one entry of a trace. An empty Symbol never resolves.
type Step struct {
	Ordinal int
	Symbol  string
	Meta    Metadata
}

// Trace is an ordered sequence of steps.
type Trace []Step

// Clone returns an independent copy.
func (t Trace) Clone() Trace {
	if t == nil {
		return nil
	}
	c := make(Trace, len(t))
	copy(c, t)
	return c
}

// Symbols returns the symbol of every step in order.
func (t Trace) Symbols() []string {
	out := make([]string, len(t))
	for i, s := range t {
		out[i] = s.Symbol
	}
	return out
}

// Last returns the final step.
func (t Trace) Last() (Step, bool) {
	if len(t) == 0 {
		return Step{}, false
	}
	return t[len(t)-1], true
}

// Resolved counts the steps whose symbol belongs to a.
func (t Trace) Resolved(a *alphabet.Alphabet) int {
	n := 0
	for _, s := range t {
		if a.Contains(s.Symbol) {
			n++
		}
	}
	return n
}

// FromSymbols builds a trace with one step per symbol of an encoded
// string. Rodopios is the clockwise distance from the previous step.
func FromSymbols(encoded string, a *alphabet.Alphabet) (Trace, error) {
	if encoded == "" {
		return nil, ErrEmptyInput
	}
	parts, err := a.Split(encoded)
	if err != nil {
		return nil, err
	}

	t := make(Trace, len(parts))
	prev := alphabet.NoSlot
	for i, sym := range parts {
		slot, _ := a.Locate(sym)
		angle := a.NumberToAngle(int(slot))
		rod := 0
		if prev.Valid() {
			rod = alphabet.Rodopios(prev, slot, a.Len())
		}
		t[i] = Step{
			Ordinal: i + 1,
			Symbol:  sym,
			Meta: Metadata{
				Angle:    &angle,
				Rodopios: &rod,
			},
		}
		prev = slot
	}
	return t, nil
}

// FromValue encodes v with a and returns the trace of its digits.
func FromValue(v *big.Int, a *alphabet.Alphabet) (Trace, error) {
	s, err := a.Encode(v)
	if err != nil {
		return nil, err
	}
	return FromSymbols(s, a)
}
