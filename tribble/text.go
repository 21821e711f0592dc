package tribble

// Character mode: the legacy text wire format. Each supported character
// maps to exactly one core value through a signed table that fills the
// whole [-40,40] range:
//
//	' '        0
//	'A'..'Z'   1..26
//	'a'..'z'  -1..-26
//	'0'..'9'   27..36
//	. , ? !    37..40
//	; : ' " ( ) [ ] { } / \ - _   -27..-40
//
// 81 characters, 81 values: the table is a total bijection with the core
// range, so every frame decodes to a character.

const textPunct = `.,?!;:'"()[]{}/\-_`

var (
	charSigned = buildCharTable()
	signedChar = invertCharTable(charSigned)
)

func buildCharTable() map[rune]int {
	m := make(map[rune]int, base81)
	m[' '] = 0
	for i, r := range []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		m[r] = i + 1
	}
	for i, r := range []rune("abcdefghijklmnopqrstuvwxyz") {
		m[r] = -(i + 1)
	}
	for i, r := range []rune("0123456789") {
		m[r] = i + 27
	}
	for i, r := range []rune(textPunct) {
		if i < 4 {
			m[r] = 37 + i
		} else {
			m[r] = -(27 + (i - 4))
		}
	}
	return m
}

func invertCharTable(m map[rune]int) map[int]rune {
	inv := make(map[int]rune, len(m))
	for r, v := range m {
		inv[v] = r
	}
	return inv
}

// EncodeText encodes text in character mode: one framed tribble per
// supported character, then the optional carrier. Runes outside the table
// are skipped, matching the legacy encoder.
func (c *Codec) EncodeText(text string) (string, error) {
	seq := make(Sequence, 0, len(text)*FrameWidth)
	for _, r := range text {
		signed, ok := charSigned[r]
		if !ok {
			continue
		}
		tr, err := c.EncodeCore(signed + coreOffset)
		if err != nil {
			return "", err
		}
		fr, err := c.Frame(tr)
		if err != nil {
			return "", err
		}
		seq = append(seq, fr...)
	}
	return c.finish(seq)
}

// DecodeText is the inverse of EncodeText. It fails fast with the same
// taxonomy as Decode; a core value with no character assignment fails with
// *UnmappedValueError.
func (c *Codec) DecodeText(symbols string) (string, error) {
	values, err := c.decodeValues(symbols)
	if err != nil {
		return "", err
	}
	out := make([]rune, 0, len(values))
	for i, v := range values {
		r, ok := signedChar[v-coreOffset]
		if !ok {
			return "", &UnmappedValueError{Value: v, Offset: i * FrameWidth}
		}
		out = append(out, r)
	}
	return string(out), nil
}
