package ppm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Upper bound on the pixel slice preallocated from header dimensions, so a
// hostile header cannot force a huge allocation before any data is read.
const maxPrealloc = 1 << 20

// A channel token may carry one leading plus sign, like the dimensions.
var plusSign = []byte{'+'}

// decodePlainPixels reads whitespace-separated tokens in groups of three.
// A trailing group of one or two tokens is dropped.
func decodePlainPixels(r io.Reader, h Header) ([]Pixel, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	capacity := maxPrealloc
	if h.Width > 0 && h.Height > 0 && h.Width <= maxPrealloc/h.Height {
		capacity = h.Width * h.Height
	}
	pixels := make([]Pixel, 0, capacity)
	var rgb [3]uint8
	n := 0
	for sc.Scan() {
		tok := sc.Bytes()
		v, err := strconv.ParseUint(string(bytes.TrimPrefix(tok, plusSign)), 10, 8)
		if err != nil {
			return nil, tokenError(FormatPlain, n, fmt.Errorf("%w: %q", ErrInvalidChannel, tok))
		}
		rgb[n%3] = uint8(v)
		if n%3 == 2 {
			pixels = append(pixels, Pixel{R: rgb[0], G: rgb[1], B: rgb[2]})
		}
		n++
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, tokenError(FormatPlain, n, fmt.Errorf("%w: token too long", ErrInvalidChannel))
		}
		return nil, &IOError{Op: "read", Err: err}
	}
	return pixels, nil
}

// EncodePlain writes the header followed by "r g b " for every pixel.
// No newline is written after the last pixel.
func (m *Image) EncodePlain(w io.Writer) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	if err := WriteHeader(bw, m.width, m.height); err != nil {
		return err
	}
	buf := make([]byte, 0, 12)
	for _, p := range m.pixels {
		buf = p.AppendText(buf[:0])
		if _, err := bw.Write(buf); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}
