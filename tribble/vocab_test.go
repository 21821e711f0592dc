package tribble

import (
	"errors"
	"testing"
)

func TestOpcode_RoundTripAllWords(t *testing.T) {
	for _, carrier := range []Pattern{nil, DefaultPattern()} {
		cfg := DefaultConfig()
		cfg.Carrier = carrier
		c := mustCodec(t, cfg)

		for _, word := range Opcodes() {
			out, err := c.EncodeOpcode(word)
			if err != nil {
				t.Fatalf("EncodeOpcode(%q) failed: %v", word, err)
			}
			if len(out) != FrameWidth {
				t.Errorf("EncodeOpcode(%q) = %d symbols, want %d", word, len(out), FrameWidth)
			}
			back, err := c.DecodeOpcode(out)
			if err != nil {
				t.Fatalf("DecodeOpcode(%q) failed: %v", word, err)
			}
			if back != word {
				t.Errorf("round trip %q -> %q", word, back)
			}
		}
	}
}

func TestOpcode_DistinctWires(t *testing.T) {
	c := mustCodec(t, DefaultConfig())
	seen := map[string]string{}
	for _, word := range Opcodes() {
		out, err := c.EncodeOpcode(word)
		if err != nil {
			t.Fatalf("EncodeOpcode(%q) failed: %v", word, err)
		}
		if prev, dup := seen[out]; dup {
			t.Errorf("%q and %q share wire form %q", word, prev, out)
		}
		seen[out] = word
	}
}

func TestEncodeOpcode_Unknown(t *testing.T) {
	c := mustCodec(t, DefaultConfig())
	_, err := c.EncodeOpcode("SHRUG")
	var uoe *UnknownOpcodeError
	if !errors.As(err, &uoe) {
		t.Fatalf("expected *UnknownOpcodeError, got %v", err)
	}
	if uoe.Word != "SHRUG" {
		t.Errorf("Word = %q", uoe.Word)
	}
}

func TestDecodeOpcode_UnmappedValue(t *testing.T) {
	c := mustCodec(t, DefaultConfig())

	// Core value 80 (signed +40) has no vocabulary assignment.
	tr, err := c.EncodeCore(80)
	if err != nil {
		t.Fatalf("EncodeCore failed: %v", err)
	}
	fr, err := c.Frame(tr)
	if err != nil {
		t.Fatalf("Frame failed: %v", err)
	}

	_, err = c.DecodeOpcode(fr.String())
	var uve *UnmappedValueError
	if !errors.As(err, &uve) {
		t.Fatalf("expected *UnmappedValueError, got %v", err)
	}
}

func TestDecodeOpcode_RejectsMultipleFrames(t *testing.T) {
	c := mustCodec(t, DefaultConfig())
	one, err := c.EncodeOpcode("ACK")
	if err != nil {
		t.Fatalf("EncodeOpcode failed: %v", err)
	}
	_, err = c.DecodeOpcode(one + one)
	var ae *AlignmentError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *AlignmentError, got %v", err)
	}
}
