package tribble

import (
	"errors"
	"fmt"
)

// ErrEmptyPattern is returned when a carrier pattern has zero length.
var ErrEmptyPattern = errors.New("tribble: empty carrier pattern")

// InvalidSymbolError is returned when a character outside the alphabet is
// encountered during parsing. Offset is the rune index, or -1 if unknown.
type InvalidSymbolError struct {
	Symbol rune
	Offset int
}

func (e *InvalidSymbolError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("tribble: invalid symbol %q at offset %d", e.Symbol, e.Offset)
	}
	return fmt.Sprintf("tribble: invalid symbol %q", e.Symbol)
}

// RangeError is returned when a value falls outside its representable
// range: a core value outside [0,80] on encode, or a recombined byte
// outside [0,255] on decode. Offset is the trit offset of the unit that
// produced the value, or -1 on encode.
type RangeError struct {
	Value  int
	Offset int
}

func (e *RangeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("tribble: value %d out of range at offset %d", e.Value, e.Offset)
	}
	return fmt.Sprintf("tribble: value %d out of range", e.Value)
}

// FrameLengthError is returned when a unit does not have its required
// fixed width (6 for tribbles, 8 for frames).
type FrameLengthError struct {
	Want int
	Got  int
}

func (e *FrameLengthError) Error() string {
	return fmt.Sprintf("tribble: unit length %d, want %d", e.Got, e.Want)
}

// AlignmentError is returned when a symbol stream cannot be split into
// whole frames: its length is not a multiple of the frame width, or the
// frame count does not cover whole bytes.
type AlignmentError struct {
	Length int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("tribble: stream of %d trits does not align to %d-trit frames", e.Length, FrameWidth)
}

// PaddingMismatchError signals corruption: a tribble boundary trit did not
// carry the pad constant on decode. Offset is the trit offset of the bad
// position within the full stream (or within the tribble when decoded
// standalone).
type PaddingMismatchError struct {
	Offset int
	Want   Trit
	Got    Trit
}

func (e *PaddingMismatchError) Error() string {
	return fmt.Sprintf("tribble: pad mismatch at offset %d: want %d, got %d", e.Offset, e.Want, e.Got)
}

// SyncLossError signals drift: a frame boundary trit did not carry the
// sync constant on decode. Frame is the zero-based frame index, Offset the
// trit offset of the bad position.
type SyncLossError struct {
	Frame  int
	Offset int
	Want   Trit
	Got    Trit
}

func (e *SyncLossError) Error() string {
	return fmt.Sprintf("tribble: sync loss in frame %d at offset %d: want %d, got %d", e.Frame, e.Offset, e.Want, e.Got)
}

// UnmappedValueError is returned in character or opcode mode when a
// decoded core value has no assignment in the active table.
type UnmappedValueError struct {
	Value  int
	Offset int
}

func (e *UnmappedValueError) Error() string {
	return fmt.Sprintf("tribble: no mapping for value %d at offset %d", e.Value, e.Offset)
}

// UnknownOpcodeError is returned when an opcode word is not in the
// vocabulary.
type UnknownOpcodeError struct {
	Word string
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("tribble: unknown opcode %q", e.Word)
}
