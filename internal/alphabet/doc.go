// Package alphabet maps the fixed symbol set used by the wheel to stable
// slot positions.
//
// An [Alphabet] is an ordered list of distinct symbols. The position of a
// symbol is its [SlotID], and the same lookup is used by the animator and by
// every renderer so that "symbol X is highlighted" and "slot for X" agree.
//
// The package also carries the base-40 codec used to turn key material into
// symbol strings:
//
//	a := alphabet.Default()
//	s := a.Encode(big.NewInt(40)) // "βα"
//	v, _ := a.Decode(s)           // 40
package alphabet
