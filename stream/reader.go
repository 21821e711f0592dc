package stream

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Neumenon/tribble/tribble"
)

// Detect scans a canonical symbol string for the preamble and parses the
// header. It returns the header and the offset where the payload starts.
// The first preamble occurrence wins; anything before it is noise.
func Detect(symbols string) (Header, int, error) {
	idx := strings.Index(symbols, Preamble)
	if idx < 0 {
		return Header{}, 0, ErrNoPreamble
	}

	suffixStart := idx + len(Preamble)
	if len(symbols) < suffixStart+2 {
		return Header{}, 0, &HeaderError{Reason: "truncated header", Offset: suffixStart}
	}

	suffix := symbols[suffixStart : suffixStart+2]
	width, ok := suffixWidth[suffix]
	if !ok {
		return Header{}, 0, &HeaderError{Reason: fmt.Sprintf("unknown width suffix %q", suffix), Offset: suffixStart}
	}
	return Header{Width: width}, suffixStart + 2, nil
}

// Reader reads envelope messages from an io.Reader, one per line. Input
// lines are dialect-normalized before detection, so LED captures and
// alternate notations decode directly.
type Reader struct {
	s       *bufio.Scanner
	maxLine int
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithMaxLine sets the maximum line size (default: 64 MiB).
func WithMaxLine(max int) ReaderOption {
	return func(r *Reader) {
		r.maxLine = max
	}
}

// NewReader creates a message reader. Lines up to MaxLineSize are
// accepted; anything longer fails the Next that reads it.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	reader := &Reader{
		s:       bufio.NewScanner(r),
		maxLine: MaxLineSize,
	}
	for _, opt := range opts {
		opt(reader)
	}
	reader.s.Buffer(nil, reader.maxLine)
	return reader
}

// Next reads and returns the next message. Blank lines (after
// normalization) are skipped. Returns io.EOF when input is exhausted and
// ErrNoPreamble or *HeaderError for lines that carry symbols but no
// parseable envelope.
func (r *Reader) Next() (*Message, error) {
	for r.s.Scan() {
		line := tribble.Normalize(r.s.Text())
		if line == "" {
			continue
		}

		hdr, payloadStart, err := Detect(line)
		if err != nil {
			return nil, err
		}
		return &Message{
			Header:  hdr,
			Payload: line[payloadStart:],
			Offset:  strings.Index(line, Preamble),
		}, nil
	}
	if err := r.s.Err(); err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}
	return nil, io.EOF
}
