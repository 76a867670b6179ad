package ppm

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic starts every zstd frame. A PPM header is text, so the two
// never collide.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// CompressedExt is the file extension that makes Save compress its output.
const CompressedExt = ".zst"

// Load decodes the image stored at path. Files holding a zstd frame are
// decompressed transparently.
func Load(path string, opts DecodeOptions) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	r, release, err := OpenStream(f)
	if err != nil {
		return nil, withPath(err, path)
	}
	defer release()

	img, err := Decode(r, opts)
	if err != nil {
		return nil, withPath(err, path)
	}
	return img, nil
}

// LoadPlain loads a plain-text image from path.
func LoadPlain(path string) (*Image, error) {
	return Load(path, DecodeOptions{Format: FormatPlain})
}

// LoadBinary loads a binary image from path.
func LoadBinary(path string) (*Image, error) {
	return Load(path, DecodeOptions{Format: FormatBinary})
}

// OpenStream wraps r so that a zstd-compressed stream reads as the PPM
// bytes it contains. The returned release function must be called once
// reading is done.
func OpenStream(r io.Reader) (*bufio.Reader, func(), error) {
	br := bufio.NewReader(r)
	if !IsCompressed(br) {
		return br, func() {}, nil
	}
	dec, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, nil, &IOError{Op: "read", Err: err}
	}
	return bufio.NewReader(dec), dec.Close, nil
}

// IsCompressed reports whether br starts with a zstd frame. It does not
// consume any input.
func IsCompressed(br *bufio.Reader) bool {
	head, _ := br.Peek(len(zstdMagic))
	return bytes.Equal(head, zstdMagic)
}

// Save writes m to path in the given format, replacing any existing file.
// A path ending in CompressedExt is written as a zstd frame.
func (m *Image) Save(path string, f Format) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if !strings.HasSuffix(strings.ToLower(path), CompressedExt) {
		return withPath(m.Encode(out, f), path)
	}

	enc, err := zstd.NewWriter(out)
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := m.Encode(enc, f); err != nil {
		enc.Close()
		return withPath(err, path)
	}
	if err := enc.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// SavePlain writes m to path as plain text.
func (m *Image) SavePlain(path string) error {
	return m.Save(path, FormatPlain)
}

// SaveBinary writes m to path in the binary format.
func (m *Image) SaveBinary(path string) error {
	return m.Save(path, FormatBinary)
}

// withPath fills in the path of an *IOError produced by a stream operation.
func withPath(err error, path string) error {
	var ioErr *IOError
	if errors.As(err, &ioErr) && ioErr.Path == "" {
		ioErr.Path = path
	}
	return err
}
