package tribble

import "sort"

// Opcode vocabulary: named control words for single-frame signaling
// between nodes. Each word is pinned to a signed core value; antonyms get
// mirrored values. Opcodes travel as one framed tribble through the normal
// pipeline, carrier included, so a receiver needs no special path to stay
// in sync.
var opcodeSigned = map[string]int{
	"HELLO": 1,
	"ACK":   2,
	"NACK":  -2,
	"READY": 3,
	"BUSY":  -3,
	"YES":   4,
	"NO":    -4,
	"MAYBE": 0,
	"OK":    5,
	"WAIT":  -5,
	"DATA":  6,
	"EOF":   -6,
	"MORE":  7,
	"DONE":  8,
	"ERROR": -8,
}

var signedOpcode = func() map[int]string {
	inv := make(map[int]string, len(opcodeSigned))
	for w, v := range opcodeSigned {
		inv[v] = w
	}
	return inv
}()

// Opcodes returns every vocabulary word in sorted order.
func Opcodes() []string {
	words := make([]string, 0, len(opcodeSigned))
	for w := range opcodeSigned {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// EncodeOpcode encodes one vocabulary word as a single frame (8 symbols).
// Fails with *UnknownOpcodeError for words outside the vocabulary. The
// lookup is case-sensitive; callers normally upper-case user input first.
func (c *Codec) EncodeOpcode(word string) (string, error) {
	signed, ok := opcodeSigned[word]
	if !ok {
		return "", &UnknownOpcodeError{Word: word}
	}
	tr, err := c.EncodeCore(signed + coreOffset)
	if err != nil {
		return "", err
	}
	fr, err := c.Frame(tr)
	if err != nil {
		return "", err
	}
	return c.finish(fr)
}

// DecodeOpcode decodes a single-frame symbol string back to its word.
// A frame that decodes cleanly but carries a value with no vocabulary
// assignment fails with *UnmappedValueError.
func (c *Codec) DecodeOpcode(symbols string) (string, error) {
	values, err := c.decodeValues(symbols)
	if err != nil {
		return "", err
	}
	if len(values) != 1 {
		return "", &AlignmentError{Length: len(values) * FrameWidth}
	}
	word, ok := signedOpcode[values[0]-coreOffset]
	if !ok {
		return "", &UnmappedValueError{Value: values[0], Offset: 0}
	}
	return word, nil
}
