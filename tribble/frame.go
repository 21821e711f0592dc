package tribble

// Frame wraps a 6-trit tribble with the sync constant on each side,
// yielding an 8-trit frame. Fails with *FrameLengthError when the input is
// not exactly one tribble wide.
func (c *Codec) Frame(tr Sequence) (Sequence, error) {
	if len(tr) != TribbleWidth {
		return nil, &FrameLengthError{Want: TribbleWidth, Got: len(tr)}
	}
	fr := make(Sequence, FrameWidth)
	fr[0] = c.cfg.Sync
	copy(fr[1:], tr)
	fr[FrameWidth-1] = c.cfg.Sync
	return fr, nil
}

// Unframe strips and validates the sync trits of an 8-trit frame,
// returning the interior tribble. A wrong boundary trit fails with
// *SyncLossError: this is the drift-detection mechanism. Corruption
// confined to interior positions is not visible here; the pad check in
// DecodeCore is the next line of defense, and the payload itself carries
// no redundancy at all.
func (c *Codec) Unframe(fr Sequence) (Sequence, error) {
	if len(fr) != FrameWidth {
		return nil, &FrameLengthError{Want: FrameWidth, Got: len(fr)}
	}
	if fr[0] != c.cfg.Sync {
		return nil, &SyncLossError{Offset: 0, Want: c.cfg.Sync, Got: fr[0]}
	}
	if fr[FrameWidth-1] != c.cfg.Sync {
		return nil, &SyncLossError{Offset: FrameWidth - 1, Want: c.cfg.Sync, Got: fr[FrameWidth-1]}
	}
	tr := make(Sequence, TribbleWidth)
	copy(tr, fr[1:FrameWidth-1])
	return tr, nil
}
