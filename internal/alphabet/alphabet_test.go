package alphabet

import (
	"errors"
	"math/big"
	"testing"
)

func TestDefault(t *testing.T) {
	a := Default()
	if a.Len() != DefaultSize {
		t.Fatalf("expected %d symbols, got %d", DefaultSize, a.Len())
	}
	if a.Step() != 9 {
		t.Errorf("expected 9 degree step, got %d", a.Step())
	}
}

func TestLocateTotal(t *testing.T) {
	a := Default()
	seen := make(map[SlotID]string)

	for i, s := range a.Symbols() {
		id, ok := a.Locate(s)
		if !ok {
			t.Fatalf("symbol %q not located", s)
		}
		if int(id) != i {
			t.Errorf("symbol %q: expected slot %d, got %d", s, i, id)
		}
		if other, dup := seen[id]; dup {
			t.Errorf("slot %d shared by %q and %q", id, other, s)
		}
		seen[id] = s
	}

	for _, s := range []string{"A", "", "αβ", "?"} {
		id, ok := Locate(s, a)
		if ok || id != NoSlot {
			t.Errorf("symbol %q: expected no slot, got %d", s, id)
		}
	}
}

func TestLocateNilAndEmpty(t *testing.T) {
	var nilAlpha *Alphabet
	if _, ok := nilAlpha.Locate("α"); ok {
		t.Error("nil alphabet should locate nothing")
	}

	empty, err := New()
	if err != nil {
		t.Fatalf("empty alphabet: %v", err)
	}
	if empty.Len() != 0 {
		t.Errorf("expected empty alphabet, got %d symbols", empty.Len())
	}
	if _, ok := empty.Locate("α"); ok {
		t.Error("empty alphabet should locate nothing")
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		symbols []string
		want    error
	}{
		{"duplicate", []string{"A", "B", "A"}, ErrDuplicateSymbol},
		{"empty symbol", []string{"A", ""}, ErrEmptySymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.symbols...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSymbolsIsCopy(t *testing.T) {
	a := MustNew("A", "B", "C")
	syms := a.Symbols()
	syms[0] = "Z"

	if s, _ := a.Symbol(0); s != "A" {
		t.Errorf("alphabet mutated through Symbols(): got %q", s)
	}
}

func TestElementID(t *testing.T) {
	if got := SlotID(7).ElementID(); got != "s7" {
		t.Errorf("expected s7, got %s", got)
	}
	if got := NoSlot.ElementID(); got != "" {
		t.Errorf("expected empty id for NoSlot, got %q", got)
	}
}

func TestNumberToAngle(t *testing.T) {
	a := Default()
	tests := []struct {
		n, want int
	}{
		{0, 0}, {1, 9}, {39, 351}, {40, 0}, {41, 9}, {-1, 351},
	}
	for _, tt := range tests {
		if got := a.NumberToAngle(tt.n); got != tt.want {
			t.Errorf("NumberToAngle(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSymbolAtAngle(t *testing.T) {
	a := Default()

	s, err := a.SymbolAtAngle(0)
	if err != nil || s != "α" {
		t.Errorf("angle 0: got %q, %v", s, err)
	}
	s, err = a.SymbolAtAngle(351)
	if err != nil || s != "∂" {
		t.Errorf("angle 351: got %q, %v", s, err)
	}

	for _, bad := range []int{-9, 360, 10} {
		if _, err := a.SymbolAtAngle(bad); !errors.Is(err, ErrAngle) {
			t.Errorf("angle %d: expected ErrAngle, got %v", bad, err)
		}
	}
}

func TestRodopios(t *testing.T) {
	if got := Rodopios(38, 2, 40); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := Rodopios(2, 38, 40); got != 36 {
		t.Errorf("expected 36, got %d", got)
	}
	if got := Rodopios(5, 5, 40); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestEncodeDecode(t *testing.T) {
	a := Default()
	tests := []struct {
		value int64
		want  string
	}{
		{0, "α"},
		{39, "∂"},
		{40, "βα"},
		{1600, "βαα"},
	}

	for _, tt := range tests {
		got, err := a.Encode(big.NewInt(tt.value))
		if err != nil {
			t.Fatalf("encode %d: %v", tt.value, err)
		}
		if got != tt.want {
			t.Errorf("encode %d: expected %q, got %q", tt.value, tt.want, got)
		}
	}

	large := big.NewInt(1234567890)
	enc, err := a.Encode(large)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	dec, err := a.Decode(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dec.Cmp(large) != 0 {
		t.Errorf("expected %s, got %s", large, dec)
	}
}

func TestEncodeErrors(t *testing.T) {
	a := Default()
	if _, err := a.Encode(big.NewInt(-1)); !errors.Is(err, ErrNegative) {
		t.Errorf("expected ErrNegative, got %v", err)
	}
	if _, err := a.Decode("αX"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	if _, err := a.Decode(""); err == nil {
		t.Error("expected error for empty input")
	}

	empty, _ := New()
	if _, err := empty.Encode(big.NewInt(1)); !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("expected ErrEmptyAlphabet, got %v", err)
	}
}

func TestEncodePadded(t *testing.T) {
	a := Default()
	got, err := a.EncodePadded(big.NewInt(40), 5)
	if err != nil {
		t.Fatal(err)
	}
	if got != "αααβα" {
		t.Errorf("expected αααβα, got %q", got)
	}

	got, err = a.EncodePadded(big.NewInt(1600), 2)
	if err != nil {
		t.Fatal(err)
	}
	if got != "βαα" {
		t.Errorf("padding must not truncate, got %q", got)
	}
}

func TestSplitMultiByte(t *testing.T) {
	a := MustNew("ab", "a", "c")
	parts, err := a.Split("abac")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ab", "a", "c"}
	if len(parts) != len(want) {
		t.Fatalf("expected %v, got %v", want, parts)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Errorf("part %d: expected %q, got %q", i, want[i], parts[i])
		}
	}
}
