package alphabet

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrDuplicateSymbol indicates an alphabet listing the same symbol twice.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")

	// ErrEmptySymbol indicates a zero-length symbol.
	ErrEmptySymbol = errors.New("alphabet: empty symbol")

	// ErrUnknownSymbol indicates a symbol that is not part of the alphabet.
	ErrUnknownSymbol = errors.New("alphabet: unknown symbol")

	// ErrEmptyAlphabet indicates an operation that needs at least one symbol.
	ErrEmptyAlphabet = errors.New("alphabet: no symbols")
)

// SlotID is the 0-based position of a symbol in an alphabet.
type SlotID int

// NoSlot marks a symbol that could not be located.
const NoSlot SlotID = -1

// Valid reports whether the id addresses a slot.
func (s SlotID) Valid() bool { return s >= 0 }

// ElementID returns the identifier used for the slot's visual elements
// ("s0", "s1", ...).
func (s SlotID) ElementID() string {
	if !s.Valid() {
		return ""
	}
	return "s" + strconv.Itoa(int(s))
}

func (s SlotID) String() string {
	if !s.Valid() {
		return "none"
	}
	return strconv.Itoa(int(s))
}

// defaultSymbols are the 40 glyphs of the deployment, one per 9° step.
var defaultSymbols = []string{
	"α", "β", "γ", "Δ", "ε", "ζ", "η", "θ", "ι", "κ",
	"λ", "μ", "ν", "ξ", "ο", "π", "ρ", "σ", "τ", "υ",
	"φ", "χ", "ψ", "Ω", "Ϙ", "ω", "Ϟ", "Ϡ", "Ҕ", "Ԛ",
	"Ӄ", "Џ", "Ʃ", "Ɣ", "Ӂ", "Ҙ", "ʤ", "⌀", "ℓ", "∂",
}

// DefaultSize is the number of symbols in the default alphabet.
const DefaultSize = 40

// Alphabet is an immutable ordered set of distinct symbols.
type Alphabet struct {
	symbols []string
	index   map[string]SlotID
	maxLen  int
}

// New builds an alphabet from the given symbols. Order is significant and
// defines slot identity.
func New(symbols ...string) (*Alphabet, error) {
	a := &Alphabet{
		symbols: make([]string, len(symbols)),
		index:   make(map[string]SlotID, len(symbols)),
	}
	copy(a.symbols, symbols)

	for i, s := range a.symbols {
		if s == "" {
			return nil, fmt.Errorf("slot %d: %w", i, ErrEmptySymbol)
		}
		if prev, ok := a.index[s]; ok {
			return nil, fmt.Errorf("%q at slots %d and %d: %w", s, prev, i, ErrDuplicateSymbol)
		}
		a.index[s] = SlotID(i)
		if len(s) > a.maxLen {
			a.maxLen = len(s)
		}
	}
	return a, nil
}

// MustNew is like New but panics on invalid input. Intended for
// package-level literals.
func MustNew(symbols ...string) *Alphabet {
	a, err := New(symbols...)
	if err != nil {
		panic(err)
	}
	return a
}

// Default returns the 40-symbol deployment alphabet.
func Default() *Alphabet {
	return MustNew(defaultSymbols...)
}

// Len returns the number of symbols. A nil alphabet is empty.
func (a *Alphabet) Len() int {
	if a == nil {
		return 0
	}
	return len(a.symbols)
}

// Symbols returns a copy of the ordered symbol list.
func (a *Alphabet) Symbols() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Symbol returns the symbol occupying slot id.
func (a *Alphabet) Symbol(id SlotID) (string, bool) {
	if a == nil || !id.Valid() || int(id) >= len(a.symbols) {
		return "", false
	}
	return a.symbols[id], true
}

// Locate returns the slot of symbol, or NoSlot and false when the symbol is
// not part of the alphabet.
func (a *Alphabet) Locate(symbol string) (SlotID, bool) {
	if a == nil {
		return NoSlot, false
	}
	id, ok := a.index[symbol]
	if !ok {
		return NoSlot, false
	}
	return id, true
}

// Contains reports whether symbol belongs to the alphabet.
func (a *Alphabet) Contains(symbol string) bool {
	_, ok := a.Locate(symbol)
	return ok
}

// Locate is the package-level form of [Alphabet.Locate].
func Locate(symbol string, a *Alphabet) (SlotID, bool) {
	return a.Locate(symbol)
}

// Split breaks an encoded string into its symbols, longest match first.
func (a *Alphabet) Split(s string) ([]string, error) {
	if a.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}
	out := make([]string, 0, len(s))
	for pos := 0; pos < len(s); {
		n := a.maxLen
		if rest := len(s) - pos; rest < n {
			n = rest
		}
		matched := 0
		for ; n > 0; n-- {
			if _, ok := a.index[s[pos:pos+n]]; ok {
				matched = n
				break
			}
		}
		if matched == 0 {
			return nil, fmt.Errorf("at byte %d of %q: %w", pos, s, ErrUnknownSymbol)
		}
		out = append(out, s[pos:pos+matched])
		pos += matched
	}
	return out, nil
}
