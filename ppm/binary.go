package ppm

import (
	"fmt"
	"io"

	"github.com/IlesESGI/libppm/internal/xdr"
)

const (
	countSize  = 8 // little-endian uint64 pixel count
	recordSize = 3 // r, g, b
)

// decodeBinaryPixels reads the rest of r as a count-prefixed pixel array.
// The payload must contain exactly count records.
func decodeBinaryPixels(r io.Reader) ([]Pixel, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}

	xr := xdr.NewReader(payload)
	count, err := xr.ReadUint64()
	if err != nil {
		return nil, offsetError(FormatBinary, 0, fmt.Errorf("%w: %d bytes, need %d for the pixel count",
			ErrTruncatedPayload, len(payload), countSize))
	}
	if avail := uint64(xr.Len() / recordSize); count > avail {
		return nil, offsetError(FormatBinary, countSize, fmt.Errorf("%w: %d pixels declared, room for %d",
			ErrTruncatedPayload, count, avail))
	}

	pixels := make([]Pixel, count)
	for i := range pixels {
		rec, err := xr.Next(recordSize)
		if err != nil {
			return nil, offsetError(FormatBinary, xr.Pos(), ErrTruncatedPayload)
		}
		pixels[i] = Pixel{R: rec[0], G: rec[1], B: rec[2]}
	}
	if xr.Len() != 0 {
		return nil, offsetError(FormatBinary, xr.Pos(), fmt.Errorf("%w: %d bytes", ErrTrailingData, xr.Len()))
	}
	return pixels, nil
}

// appendBinaryPixels serializes pixels into w.
func appendBinaryPixels(w *xdr.BufferWriter, pixels []Pixel) {
	w.WriteUint64(uint64(len(pixels)))
	for _, p := range pixels {
		w.WriteByte(p.R)
		w.WriteByte(p.G)
		w.WriteByte(p.B)
	}
}

// EncodeBinary writes the header followed by the binary pixel payload.
func (m *Image) EncodeBinary(w io.Writer) error {
	if err := WriteHeader(w, m.width, m.height); err != nil {
		return err
	}
	buf := xdr.NewBufferWriter(countSize + recordSize*len(m.pixels))
	appendBinaryPixels(buf, m.pixels)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}
