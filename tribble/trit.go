package tribble

import (
	"fmt"
	"strings"
)

// Trit is a balanced-ternary digit: -1, 0, or +1.
type Trit int8

const (
	Neg  Trit = -1
	Zero Trit = 0
	Pos  Trit = 1
)

// Valid reports whether t is one of the three legal trit values.
func (t Trit) Valid() bool {
	return t >= Neg && t <= Pos
}

// AddMod3 adds two trits modulo 3 in balanced form.
// The result is always in {-1, 0, +1}.
func AddMod3(a, b Trit) Trit {
	sum := int8(a) + int8(b)
	if sum > 1 {
		sum -= 3
	} else if sum < -1 {
		sum += 3
	}
	return Trit(sum)
}

// SubMod3 subtracts b from a modulo 3 in balanced form.
// SubMod3(AddMod3(a, b), b) == a for all a, b.
func SubMod3(a, b Trit) Trit {
	return AddMod3(a, -b)
}

// Alphabet is a total bijection between trits and display symbols.
// It is immutable after construction and safe to share across goroutines.
type Alphabet struct {
	neg, zero, pos rune
}

// DefaultAlphabet returns the wire-format alphabet {-1:'-', 0:'=', +1:'+'}.
func DefaultAlphabet() Alphabet {
	return Alphabet{neg: '-', zero: '=', pos: '+'}
}

// NewAlphabet creates an alphabet from three distinct symbols.
func NewAlphabet(neg, zero, pos rune) (Alphabet, error) {
	if neg == zero || neg == pos || zero == pos {
		return Alphabet{}, fmt.Errorf("tribble: alphabet symbols must be distinct: %q %q %q", neg, zero, pos)
	}
	return Alphabet{neg: neg, zero: zero, pos: pos}, nil
}

// Symbol returns the display symbol for a trit.
func (a Alphabet) Symbol(t Trit) rune {
	switch t {
	case Neg:
		return a.neg
	case Pos:
		return a.pos
	default:
		return a.zero
	}
}

// Trit returns the trit for a display symbol.
// Fails with *InvalidSymbolError for any rune outside the alphabet.
func (a Alphabet) Trit(r rune) (Trit, error) {
	switch r {
	case a.neg:
		return Neg, nil
	case a.zero:
		return Zero, nil
	case a.pos:
		return Pos, nil
	default:
		return 0, &InvalidSymbolError{Symbol: r, Offset: -1}
	}
}

// Contains reports whether r is one of the three alphabet symbols.
func (a Alphabet) Contains(r rune) bool {
	return r == a.neg || r == a.zero || r == a.pos
}

// Sequence is an ordered run of trits. Order is significant: within a core
// unit the most significant digit comes first.
type Sequence []Trit

// ParseSequence parses a symbol string into a trit sequence.
// Fails with *InvalidSymbolError carrying the rune offset of the first
// symbol outside the alphabet.
func ParseSequence(symbols string, a Alphabet) (Sequence, error) {
	seq := make(Sequence, 0, len(symbols))
	for i, r := range []rune(symbols) {
		t, err := a.Trit(r)
		if err != nil {
			return nil, &InvalidSymbolError{Symbol: r, Offset: i}
		}
		seq = append(seq, t)
	}
	return seq, nil
}

// Format renders the sequence as a symbol string.
func (s Sequence) Format(a Alphabet) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, t := range s {
		b.WriteRune(a.Symbol(t))
	}
	return b.String()
}

// String renders the sequence using the default alphabet.
func (s Sequence) String() string {
	return s.Format(DefaultAlphabet())
}

// Equal reports elementwise equality.
func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}
