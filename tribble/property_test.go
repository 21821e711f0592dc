// Property-based tests for the codec laws: byte round-trip, carrier
// inversion, and core value round-trip over randomized inputs.
package tribble_test

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Neumenon/tribble/tribble"
)

func genTrit() gopter.Gen {
	return gen.OneConstOf(tribble.Neg, tribble.Zero, tribble.Pos)
}

func genSequence() gopter.Gen {
	return gen.SliceOf(genTrit()).Map(func(ts []tribble.Trit) tribble.Sequence {
		return tribble.Sequence(ts)
	})
}

func genPattern() gopter.Gen {
	return gen.SliceOfN(4, genTrit()).Map(func(ts []tribble.Trit) tribble.Pattern {
		return tribble.Pattern(ts)
	})
}

func TestProperty_ByteRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Decode(Encode(b)) == b with and without carrier", prop.ForAll(
		func(data []byte, carrier tribble.Pattern, useCarrier bool) bool {
			cfg := tribble.DefaultConfig()
			if useCarrier {
				cfg.Carrier = carrier
			}
			c, err := tribble.New(cfg)
			if err != nil {
				return false
			}
			out, err := c.Encode(data)
			if err != nil {
				return false
			}
			back, err := c.Decode(out)
			if err != nil {
				return false
			}
			return bytes.Equal(back, data)
		},
		gen.SliceOf(gen.UInt8()),
		genPattern(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestProperty_CarrierInverse(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Remove(Apply(s, p), p) == s", prop.ForAll(
		func(s tribble.Sequence, p tribble.Pattern) bool {
			applied, err := p.Apply(s)
			if err != nil {
				return false
			}
			removed, err := p.Remove(applied)
			if err != nil {
				return false
			}
			return removed.Equal(s)
		},
		genSequence(),
		genPattern(),
	))

	properties.TestingRun(t)
}

func TestProperty_CoreRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	c, err := tribble.New(tribble.DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	properties.Property("DecodeCore(Frame/Unframe(EncodeCore(v))) == v", prop.ForAll(
		func(v int) bool {
			tr, err := c.EncodeCore(v)
			if err != nil {
				return false
			}
			fr, err := c.Frame(tr)
			if err != nil {
				return false
			}
			back, err := c.Unframe(fr)
			if err != nil {
				return false
			}
			got, err := c.DecodeCore(back)
			return err == nil && got == v
		},
		gen.IntRange(tribble.CoreMin, tribble.CoreMax),
	))

	properties.TestingRun(t)
}
