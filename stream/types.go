// Package stream implements the Tribble transport envelope: a sync
// preamble plus a two-trit width announcement in front of a symbol
// payload, one message per line.
//
// The envelope gives a receiver three things the bare codec does not:
//   - Resync: the preamble "++++" can be found inside a noisy capture
//     (leading garbage, LED glyphs, dialect notation).
//   - Width negotiation: the suffix announces the frame width of the
//     payload, so mixed-width senders can share a channel.
//   - Message boundaries: one line is one message.
//
// Envelope trits are NOT part of the codec stream: the payload after the
// header is handed to the tribble codec unchanged.
package stream

import (
	"errors"
	"fmt"
)

// Preamble marks the start of every message.
const Preamble = "++++"

// MaxLineSize is the default maximum message line size (64 MiB).
const MaxLineSize = 64 * 1024 * 1024

// Width is the frame width announced by a message header, in trits.
type Width int

const (
	WidthCore    Width = 4  // bare core values, no padding
	WidthTribble Width = 6  // padded tribbles, unframed
	WidthFramed  Width = 8  // framed tribbles (the codec default)
	WidthTryte   Width = 12 // extended unit, reserved for concept mode
)

// Valid reports whether w is an announced width.
func (w Width) Valid() bool {
	_, ok := widthSuffix[w]
	return ok
}

// String returns the width as a trit count.
func (w Width) String() string {
	return fmt.Sprintf("%d-trit", int(w))
}

// Two-trit width suffixes, fixed by the wire protocol.
var widthSuffix = map[Width]string{
	WidthCore:    "+-",
	WidthTribble: "+=",
	WidthFramed:  "++",
	WidthTryte:   "-+",
}

var suffixWidth = func() map[string]Width {
	inv := make(map[string]Width, len(widthSuffix))
	for w, s := range widthSuffix {
		inv[s] = w
	}
	return inv
}()

// Header is the decoded message envelope.
type Header struct {
	Width Width
}

// Message is one decoded envelope line.
type Message struct {
	Header

	// Payload holds the canonical symbols following the header.
	Payload string

	// Offset is the symbol offset of the preamble within the normalized
	// line; anything before it was channel noise.
	Offset int
}

// ErrNoPreamble is returned when a message contains no sync preamble.
var ErrNoPreamble = errors.New("stream: no preamble found")

// HeaderError is returned when a preamble is found but the header cannot
// be parsed. Offset is the symbol offset of the problem.
type HeaderError struct {
	Reason string
	Offset int
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("stream: %s at offset %d", e.Reason, e.Offset)
}
