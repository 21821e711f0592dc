package tribble

// Pattern is a repeating carrier sequence. It is cycled across the target
// stream, so any non-empty length works; the canonical pattern is four
// trits. Patterns are read-only configuration and safe to share.
type Pattern []Trit

// DefaultPattern returns the canonical carrier pattern "+=-=".
func DefaultPattern() Pattern {
	return Pattern{Pos, Zero, Neg, Zero}
}

// ParsePattern parses a pattern from its symbol form.
// Fails with ErrEmptyPattern for an empty string and with
// *InvalidSymbolError for symbols outside the alphabet.
func ParsePattern(symbols string, a Alphabet) (Pattern, error) {
	if symbols == "" {
		return nil, ErrEmptyPattern
	}
	seq, err := ParseSequence(symbols, a)
	if err != nil {
		return nil, err
	}
	return Pattern(seq), nil
}

// Apply overlays the pattern onto a stream: out[i] = AddMod3(s[i], p[i mod len(p)]).
// Works for every stream length including zero. Fails with ErrEmptyPattern
// when the pattern has no trits.
func (p Pattern) Apply(s Sequence) (Sequence, error) {
	return p.modulate(s, AddMod3)
}

// Remove is the exact inverse of Apply over the same pattern:
// Remove(Apply(s, p), p) == s for all s and non-empty p.
func (p Pattern) Remove(s Sequence) (Sequence, error) {
	return p.modulate(s, SubMod3)
}

func (p Pattern) modulate(s Sequence, op func(a, b Trit) Trit) (Sequence, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPattern
	}
	out := make(Sequence, len(s))
	for i, t := range s {
		out[i] = op(t, p[i%len(p)])
	}
	return out, nil
}
