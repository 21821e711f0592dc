package stream

import (
	"fmt"
	"io"

	"github.com/Neumenon/tribble/tribble"
)

// Writer writes envelope messages to an io.Writer, one per line.
type Writer struct {
	w io.Writer
}

// NewWriter creates a message writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteMessage writes one message: preamble, width suffix, payload,
// newline. The payload must be canonical symbols aligned to the announced
// width; misuse here would strand every downstream decoder, so it is
// rejected rather than passed through.
func (w *Writer) WriteMessage(width Width, payload string) error {
	suffix, ok := widthSuffix[width]
	if !ok {
		return &HeaderError{Reason: fmt.Sprintf("unsupported width %d", int(width)), Offset: len(Preamble)}
	}
	if _, err := tribble.ParseSequence(payload, tribble.DefaultAlphabet()); err != nil {
		return err
	}
	if len(payload)%int(width) != 0 {
		return &HeaderError{
			Reason: fmt.Sprintf("payload of %d symbols does not align to %s units", len(payload), width),
			Offset: len(Preamble) + len(suffix),
		}
	}

	if _, err := io.WriteString(w.w, Preamble+suffix+payload+"\n"); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}
