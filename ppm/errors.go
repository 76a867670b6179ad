package ppm

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Typed errors below wrap these so callers can test with
// errors.Is while still getting position information through errors.As.
var (
	ErrMissingHeaderLine   = errors.New("ppm: missing header line")
	ErrInvalidDimensions   = errors.New("ppm: width and height must be positive integers")
	ErrUnsupportedMaxValue = errors.New("ppm: maximum channel value must be 255")
	ErrInvalidChannel      = errors.New("ppm: invalid channel value")
	ErrTruncatedPayload    = errors.New("ppm: truncated binary payload")
	ErrTrailingData        = errors.New("ppm: trailing data after binary payload")
	ErrDimensionMismatch   = errors.New("ppm: pixel count does not match dimensions")
	ErrUnknownFormat       = errors.New("ppm: unknown format")
	ErrUnknownOperation    = errors.New("ppm: unknown operation")
)

// HeaderError reports a problem in the three-line text header.
type HeaderError struct {
	Line int // 1-based header line
	Err  error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("ppm: header line %d: %s", e.Line, detail(e.Err))
}

func (e *HeaderError) Unwrap() error { return e.Err }

// DecodeError reports a pixel payload that cannot be interpreted.
//
// For plain payloads Index is the 0-based token index; for binary payloads
// Offset is the byte offset within the payload. The unused field is -1.
type DecodeError struct {
	Format Format
	Index  int
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Index >= 0:
		return fmt.Sprintf("ppm: %s payload: token %d: %s", e.Format, e.Index, detail(e.Err))
	case e.Offset >= 0:
		return fmt.Sprintf("ppm: %s payload: offset %d: %s", e.Format, e.Offset, detail(e.Err))
	default:
		return fmt.Sprintf("ppm: %s payload: %s", e.Format, detail(e.Err))
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IOError reports a failure of the underlying source or destination.
type IOError struct {
	Op   string // "open", "create", "read", "write", "close"
	Path string // empty for in-memory streams
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("ppm: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("ppm: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// detail drops the package prefix of a wrapped sentinel message.
func detail(err error) string {
	return strings.TrimPrefix(err.Error(), "ppm: ")
}

func tokenError(f Format, index int, err error) *DecodeError {
	return &DecodeError{Format: f, Index: index, Offset: -1, Err: err}
}

func offsetError(f Format, offset int, err error) *DecodeError {
	return &DecodeError{Format: f, Index: -1, Offset: offset, Err: err}
}

func payloadError(f Format, err error) *DecodeError {
	return &DecodeError{Format: f, Index: -1, Offset: -1, Err: err}
}
