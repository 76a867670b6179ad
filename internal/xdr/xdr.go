// Package xdr provides little-endian binary encoding and decoding utilities
// for the binary PPM pixel payload.
//
// The payload is a length-prefixed array: an unsigned 64-bit element count
// followed by fixed-size records. This package supplies the bounds-checked
// primitives; the record layout lives in package ppm.
package xdr

import (
	"encoding/binary"
	"errors"
)

var (
	// ErrShortBuffer is returned when a read cannot complete because
	// there isn't enough data left in the buffer.
	ErrShortBuffer = errors.New("xdr: buffer too short")

	// ErrNegativeSize is returned when a size parameter is negative.
	ErrNegativeSize = errors.New("xdr: negative size")
)

// ByteOrder is the byte order used by the binary payload.
var ByteOrder = binary.LittleEndian

// Reader reads little-endian values from a byte slice.
// It maintains a read position and bounds-checks every operation.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over data. The slice is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	if r.pos >= len(r.data) {
		return 0
	}
	return len(r.data) - r.pos
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Next returns the next n bytes without copying and advances past them.
// The returned slice aliases the reader's buffer.
func (r *Reader) Next(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if n > r.Len() {
		return nil, ErrShortBuffer
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadUint64 reads an unsigned 64-bit integer.
func (r *Reader) ReadUint64() (uint64, error) {
	if r.Len() < 8 {
		return 0, ErrShortBuffer
	}
	v := ByteOrder.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

// BufferWriter is a growing little-endian writer backed by a byte slice.
type BufferWriter struct {
	buf []byte
}

// NewBufferWriter creates a BufferWriter with the given initial capacity.
func NewBufferWriter(capacity int) *BufferWriter {
	if capacity < 0 {
		capacity = 0
	}
	return &BufferWriter{buf: make([]byte, 0, capacity)}
}

// Bytes returns the written bytes. The slice aliases the internal buffer.
func (w *BufferWriter) Bytes() []byte {
	return w.buf
}

// WriteByte appends a single byte. It never fails.
func (w *BufferWriter) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

// WriteUint64 appends an unsigned 64-bit integer.
func (w *BufferWriter) WriteUint64(v uint64) {
	w.buf = ByteOrder.AppendUint64(w.buf, v)
}
