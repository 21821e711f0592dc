package tribble

// Unit widths, in trits.
const (
	CoreWidth    = 4 // balanced-ternary payload digits
	TribbleWidth = 6 // pad + core + pad
	FrameWidth   = 8 // sync + tribble + sync
)

// Core value bounds. A 4-trit balanced-ternary number spans [-40,40];
// shifting by coreOffset gives the unsigned range [0,80].
const (
	CoreMin    = 0
	CoreMax    = 80
	coreOffset = 40
)

// EncodeCore converts a core value in [0,80] into a 6-trit tribble:
// the pad trit, four balanced-ternary digits most significant first, and
// the pad trit again. Fails with *RangeError outside [0,80].
func (c *Codec) EncodeCore(value int) (Sequence, error) {
	if value < CoreMin || value > CoreMax {
		return nil, &RangeError{Value: value, Offset: -1}
	}

	n := value - coreOffset
	tr := make(Sequence, TribbleWidth)
	tr[0] = c.cfg.Pad
	tr[TribbleWidth-1] = c.cfg.Pad

	// Digits come out least significant first; fill right to left.
	for i := CoreWidth; i >= 1; i-- {
		rem := ((n+1)%3+3)%3 - 1
		tr[i] = Trit(rem)
		n = (n - rem) / 3
	}
	return tr, nil
}

// DecodeCore parses a 6-trit tribble back into its core value.
// Fails with *FrameLengthError when the sequence is not 6 trits, and with
// *PaddingMismatchError when a boundary trit does not carry the pad
// constant. Pad checking is detection only; nothing is corrected.
func (c *Codec) DecodeCore(tr Sequence) (int, error) {
	if len(tr) != TribbleWidth {
		return 0, &FrameLengthError{Want: TribbleWidth, Got: len(tr)}
	}
	if tr[0] != c.cfg.Pad {
		return 0, &PaddingMismatchError{Offset: 0, Want: c.cfg.Pad, Got: tr[0]}
	}
	if tr[TribbleWidth-1] != c.cfg.Pad {
		return 0, &PaddingMismatchError{Offset: TribbleWidth - 1, Want: c.cfg.Pad, Got: tr[TribbleWidth-1]}
	}

	n := 0
	for _, t := range tr[1 : TribbleWidth-1] {
		n = n*3 + int(t)
	}
	return n + coreOffset, nil
}
