package tribble

import "errors"

// SymbolsPerByte is the wire cost of one input byte: two framed tribbles.
const SymbolsPerByte = 2 * FrameWidth

// base81 splits one byte into two core digits, high digit first.
const base81 = CoreMax + 1

// Config fixes the wire-format constants for one codec instance. All
// fields are read-only after New; a Config can therefore be shared freely
// across concurrent codecs.
type Config struct {
	// Alphabet maps trits to display symbols. Both ends of a link must
	// agree on it.
	Alphabet Alphabet

	// Pad is the constant carried by tribble boundary trits.
	Pad Trit

	// Sync is the constant carried by frame boundary trits. It may equal
	// Pad; the decoder never confuses the two because positions are fixed.
	Sync Trit

	// Carrier, when non-nil, is overlaid on every encoded stream and
	// removed on decode. Nil means no overlay. Non-nil must be non-empty.
	Carrier Pattern
}

// DefaultConfig returns the canonical wire configuration: '-'/'='/'+'
// alphabet, zero pad and sync trits, no carrier.
func DefaultConfig() Config {
	return Config{Alphabet: DefaultAlphabet(), Pad: Zero, Sync: Zero}
}

// Codec is the stream assembler. It is stateless between calls: every
// Encode/Decode owns its intermediate sequences exclusively, so one Codec
// may be used from any number of goroutines.
type Codec struct {
	cfg Config
}

// New creates a codec over a fixed configuration.
func New(cfg Config) (*Codec, error) {
	if !cfg.Pad.Valid() {
		return nil, errors.New("tribble: pad is not a valid trit")
	}
	if !cfg.Sync.Valid() {
		return nil, errors.New("tribble: sync is not a valid trit")
	}
	if cfg.Carrier != nil && len(cfg.Carrier) == 0 {
		return nil, ErrEmptyPattern
	}
	if (cfg.Alphabet == Alphabet{}) {
		cfg.Alphabet = DefaultAlphabet()
	}
	return &Codec{cfg: cfg}, nil
}

// Config returns a copy of the codec configuration.
func (c *Codec) Config() Config {
	return c.cfg
}

// Encode maps input bytes to a symbol string: each byte becomes two core
// values (base-81, high digit first), each core value one framed tribble,
// then the optional carrier is overlaid across the concatenated stream.
// Output length is always len(data) * SymbolsPerByte.
func (c *Codec) Encode(data []byte) (string, error) {
	seq := make(Sequence, 0, len(data)*SymbolsPerByte)
	for _, b := range data {
		for _, digit := range [2]int{int(b) / base81, int(b) % base81} {
			tr, err := c.EncodeCore(digit)
			if err != nil {
				return "", err
			}
			fr, err := c.Frame(tr)
			if err != nil {
				return "", err
			}
			seq = append(seq, fr...)
		}
	}
	return c.finish(seq)
}

// Decode is the exact inverse of Encode. It fails fast at the first
// detected error: *AlignmentError when the stream does not split into
// whole frames covering whole bytes, and *InvalidSymbolError,
// *SyncLossError, *PaddingMismatchError or *RangeError from the inner
// layers, annotated with the trit offset of the failing unit. No partial
// output is ever returned.
func (c *Codec) Decode(symbols string) ([]byte, error) {
	values, err := c.decodeValues(symbols)
	if err != nil {
		return nil, err
	}
	if len(values)%2 != 0 {
		return nil, &AlignmentError{Length: len(values) * FrameWidth}
	}

	data := make([]byte, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		b := values[i]*base81 + values[i+1]
		if b > 255 {
			return nil, &RangeError{Value: b, Offset: i * FrameWidth}
		}
		data = append(data, byte(b))
	}
	return data, nil
}

// decodeValues runs the shared front half of the decode pipeline: parse
// symbols, strip the carrier, split into frames, validate sync and pad
// trits, and return one core value per frame.
func (c *Codec) decodeValues(symbols string) ([]int, error) {
	seq, err := ParseSequence(symbols, c.cfg.Alphabet)
	if err != nil {
		return nil, err
	}
	if len(seq)%FrameWidth != 0 {
		return nil, &AlignmentError{Length: len(seq)}
	}
	if c.cfg.Carrier != nil {
		seq, err = c.cfg.Carrier.Remove(seq)
		if err != nil {
			return nil, err
		}
	}

	values := make([]int, 0, len(seq)/FrameWidth)
	for i := 0; i < len(seq); i += FrameWidth {
		v, err := c.decodeFrameAt(seq[i:i+FrameWidth], i)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// decodeFrameAt decodes one frame, rebasing unit-relative error offsets
// onto the full stream so diagnostics point at the real trit position.
func (c *Codec) decodeFrameAt(fr Sequence, base int) (int, error) {
	tr, err := c.Unframe(fr)
	if err != nil {
		var sl *SyncLossError
		if errors.As(err, &sl) {
			sl.Frame = base / FrameWidth
			sl.Offset += base
		}
		return 0, err
	}
	v, err := c.DecodeCore(tr)
	if err != nil {
		var pm *PaddingMismatchError
		if errors.As(err, &pm) {
			pm.Offset += base + 1 // tribble starts one trit into the frame
		}
		return 0, err
	}
	return v, nil
}

// finish overlays the carrier (when configured) and serializes.
func (c *Codec) finish(seq Sequence) (string, error) {
	if c.cfg.Carrier != nil {
		var err error
		seq, err = c.cfg.Carrier.Apply(seq)
		if err != nil {
			return "", err
		}
	}
	return seq.Format(c.cfg.Alphabet), nil
}
