package ppm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Magic is the format tag written on the first header line of every
// output file, plain or binary.
const Magic = "P3"

// MaxValue is the only maximum channel value this package writes.
const MaxValue = 255

// Header holds the three text lines that precede the pixel payload.
type Header struct {
	Magic    string // first line as read; not interpreted
	Width    int
	Height   int
	MaxValue int // -1 when the third line is not a number
}

// ReadHeader reads exactly three newline-terminated lines from r.
// The third line may also be terminated by end of input.
//
// On line 2 only the first and the last whitespace-separated tokens are
// consulted, as width and height. Line 3 is parsed but not checked here.
func ReadHeader(r *bufio.Reader) (Header, error) {
	var lines [3]string
	for i := range lines {
		s, err := r.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return Header{}, &IOError{Op: "read", Err: err}
			}
			if s == "" {
				return Header{}, &HeaderError{Line: i + 1, Err: ErrMissingHeaderLine}
			}
		}
		lines[i] = strings.TrimRight(s, "\r\n")
	}

	h := Header{Magic: lines[0], MaxValue: -1}

	fields := strings.Fields(lines[1])
	if len(fields) == 0 {
		return Header{}, &HeaderError{Line: 2, Err: fmt.Errorf("%w: no size tokens", ErrInvalidDimensions)}
	}
	var err error
	if h.Width, err = parseDimension(fields[0]); err != nil {
		return Header{}, &HeaderError{Line: 2, Err: err}
	}
	if h.Height, err = parseDimension(fields[len(fields)-1]); err != nil {
		return Header{}, &HeaderError{Line: 2, Err: err}
	}

	if v, err := strconv.Atoi(strings.TrimSpace(lines[2])); err == nil {
		h.MaxValue = v
	}
	return h, nil
}

func parseDimension(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDimensions, tok)
	}
	return n, nil
}

// WriteHeader writes "P3\n{width} {height}\n255\n" to w.
func WriteHeader(w io.Writer, width, height int) error {
	if _, err := fmt.Fprintf(w, "%s\n%d %d\n%d\n", Magic, width, height, MaxValue); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}
