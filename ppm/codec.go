package ppm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Format selects the pixel payload encoding. Both formats share the same
// three-line text header.
type Format int

const (
	// FormatPlain is whitespace-separated decimal channel values.
	FormatPlain Format = iota
	// FormatBinary is a little-endian uint64 pixel count followed by
	// 3 bytes (r, g, b) per pixel.
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatBinary:
		return "binary"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts "plain"/"p" and "binary"/"b", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "p", "text":
		return FormatPlain, nil
	case "binary", "b", "bin":
		return FormatBinary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DecodeOptions controls Decode.
type DecodeOptions struct {
	Format Format

	// Strict rejects inputs the lenient decoder accepts: a maximum value
	// other than 255, and a pixel count that differs from Width*Height.
	Strict bool
}

// Decode reads a header and a pixel payload from r.
func Decode(r io.Reader, opts DecodeOptions) (*Image, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	h, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}
	if opts.Strict && h.MaxValue != MaxValue {
		return nil, &HeaderError{Line: 3, Err: fmt.Errorf("%w: got %d", ErrUnsupportedMaxValue, h.MaxValue)}
	}

	var pixels []Pixel
	switch opts.Format {
	case FormatPlain:
		pixels, err = decodePlainPixels(br, h)
	case FormatBinary:
		pixels, err = decodeBinaryPixels(br)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, opts.Format)
	}
	if err != nil {
		return nil, err
	}

	img := NewImage(pixels, h.Width, h.Height)
	if opts.Strict {
		if err := img.Validate(); err != nil {
			return nil, payloadError(opts.Format, err)
		}
	}
	return img, nil
}

// DecodePlain decodes a plain-text image from r without strict checks.
func DecodePlain(r io.Reader) (*Image, error) {
	return Decode(r, DecodeOptions{Format: FormatPlain})
}

// DecodeBinary decodes a binary image from r without strict checks.
func DecodeBinary(r io.Reader) (*Image, error) {
	return Decode(r, DecodeOptions{Format: FormatBinary})
}

// Encode writes m to w in the given format.
func (m *Image) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatPlain:
		return m.EncodePlain(w)
	case FormatBinary:
		return m.EncodeBinary(w)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}
