package alphabet

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrAngle indicates an angle that does not fall on a slot.
var ErrAngle = errors.New("alphabet: angle not on a slot boundary")

// ErrNegative indicates a negative value passed to the encoder.
var ErrNegative = errors.New("alphabet: negative value")

// Step returns the angular distance in whole degrees between neighbouring
// slots, 9 for the default alphabet. Alphabets whose size does not divide
// 360 are rounded down.
func (a *Alphabet) Step() int {
	if a.Len() == 0 {
		return 0
	}
	return 360 / a.Len()
}

// NumberToAngle maps n to (n*step) mod 360.
func (a *Alphabet) NumberToAngle(n int) int {
	step := a.Step()
	if step == 0 {
		return 0
	}
	angle := (n * step) % 360
	if angle < 0 {
		angle += 360
	}
	return angle
}

// SymbolAtAngle returns the symbol whose slot sits at angle degrees.
func (a *Alphabet) SymbolAtAngle(angle int) (string, error) {
	step := a.Step()
	if step == 0 {
		return "", ErrEmptyAlphabet
	}
	if angle < 0 || angle >= 360 {
		return "", fmt.Errorf("%d outside [0,360): %w", angle, ErrAngle)
	}
	if angle%step != 0 {
		return "", fmt.Errorf("%d not a multiple of %d: %w", angle, step, ErrAngle)
	}
	id := SlotID(angle / step)
	s, ok := a.Symbol(id)
	if !ok {
		return "", fmt.Errorf("slot %d: %w", id, ErrAngle)
	}
	return s, nil
}

// Rodopios is the clockwise slot distance travelled from prev to cur on a
// wheel of n slots.
func Rodopios(prev, cur SlotID, n int) int {
	if n <= 0 {
		return 0
	}
	return ((int(cur)-int(prev))%n + n) % n
}

// Encode writes v in base len(a), most significant symbol first. Zero
// encodes as the first symbol.
func (a *Alphabet) Encode(v *big.Int) (string, error) {
	if a.Len() == 0 {
		return "", ErrEmptyAlphabet
	}
	if v.Sign() < 0 {
		return "", ErrNegative
	}
	if v.Sign() == 0 {
		return a.symbols[0], nil
	}

	base := big.NewInt(int64(a.Len()))
	num := new(big.Int).Set(v)
	rem := new(big.Int)

	var digits []string
	for num.Sign() > 0 {
		num.QuoRem(num, base, rem)
		digits = append(digits, a.symbols[rem.Int64()])
	}

	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteString(digits[i])
	}
	return b.String(), nil
}

// EncodePadded encodes v and left-pads the result with the first symbol
// until it holds at least width symbols.
func (a *Alphabet) EncodePadded(v *big.Int, width int) (string, error) {
	s, err := a.Encode(v)
	if err != nil {
		return "", err
	}
	parts, err := a.Split(s)
	if err != nil {
		return "", err
	}
	if pad := width - len(parts); pad > 0 {
		s = strings.Repeat(a.symbols[0], pad) + s
	}
	return s, nil
}

// Decode parses a string produced by Encode.
func (a *Alphabet) Decode(s string) (*big.Int, error) {
	if s == "" {
		return nil, errors.New("alphabet: empty input")
	}
	parts, err := a.Split(s)
	if err != nil {
		return nil, err
	}

	base := big.NewInt(int64(a.Len()))
	v := new(big.Int)
	for _, p := range parts {
		id, _ := a.Locate(p)
		v.Mul(v, base)
		v.Add(v, big.NewInt(int64(id)))
	}
	return v, nil
}
