// Package ppmutil provides file-level helpers built on package ppm.
//
// The binary and plain formats share a header, so these helpers look at
// the payload to tell them apart:
//
//	info, _ := ppmutil.GetFileInfo("photo.ppm")
//	fmt.Printf("%dx%d %s, %d pixels\n", info.Width, info.Height, info.Format, info.PixelCount)
package ppmutil

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/IlesESGI/libppm/ppm"
)

// Dimensions above this are reported as unusual.
const largeDimension = 1 << 15

// ===========================================
// File Information
// ===========================================

// FileInfo summarizes a PPM file.
type FileInfo struct {
	Path       string
	Magic      string
	Width      int
	Height     int
	MaxValue   int
	Format     ppm.Format
	PixelCount int
	Consistent bool // PixelCount == Width*Height
	Compressed bool // stored inside a zstd frame
	FileSize   int64
}

// GetFileInfo returns summary information about the file at path.
func GetFileInfo(path string) (*FileInfo, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	h, payload, err := splitHeader(data.raw)
	if err != nil {
		return nil, err
	}

	format := SniffFormat(payload)
	img, err := ppm.Decode(bytes.NewReader(data.raw), ppm.DecodeOptions{Format: format})
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		Path:       path,
		Magic:      h.Magic,
		Width:      h.Width,
		Height:     h.Height,
		MaxValue:   h.MaxValue,
		Format:     format,
		PixelCount: img.Len(),
		Consistent: img.Validate() == nil,
		Compressed: data.compressed,
		FileSize:   data.size,
	}, nil
}

// SniffFormat guesses the payload encoding. A payload holding a control
// byte other than ASCII whitespace is binary: the count prefix of any
// realistic image contains zero bytes. Everything else, including signs,
// stray letters and non-ASCII text, is left to the plain decoder so that
// its token errors reach the caller.
func SniffFormat(payload []byte) ppm.Format {
	for _, b := range payload {
		switch {
		case b == '\t', b == '\n', b == '\v', b == '\f', b == '\r':
		case b < 0x20, b == 0x7f:
			return ppm.FormatBinary
		}
	}
	return ppm.FormatPlain
}

// Load decodes the file at path, detecting its payload format.
func Load(path string, strict bool) (*ppm.Image, ppm.Format, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, 0, err
	}
	_, payload, err := splitHeader(data.raw)
	if err != nil {
		return nil, 0, err
	}
	format := SniffFormat(payload)
	img, err := ppm.Decode(bytes.NewReader(data.raw), ppm.DecodeOptions{Format: format, Strict: strict})
	if err != nil {
		return nil, format, err
	}
	return img, format, nil
}

type fileData struct {
	raw        []byte // decompressed PPM bytes
	compressed bool
	size       int64 // on-disk size
}

func readFile(path string) (*fileData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ppm.IOError{Op: "open", Path: path, Err: err}
	}
	fd := &fileData{raw: data, size: int64(len(data))}

	if !ppm.IsCompressed(bufio.NewReader(bytes.NewReader(data))) {
		return fd, nil
	}
	fd.compressed = true
	br, release, err := ppm.OpenStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer release()
	if fd.raw, err = io.ReadAll(br); err != nil {
		return nil, &ppm.IOError{Op: "read", Path: path, Err: err}
	}
	return fd, nil
}

func splitHeader(raw []byte) (ppm.Header, []byte, error) {
	br := bufio.NewReader(bytes.NewReader(raw))
	h, err := ppm.ReadHeader(br)
	if err != nil {
		return ppm.Header{}, nil, err
	}
	payload, _ := io.ReadAll(br)
	return h, payload, nil
}

// ===========================================
// Validation
// ===========================================

// ValidationResult contains the results of file validation.
type ValidationResult struct {
	Valid    bool
	Warnings []string
	Errors   []string
	Checks   []string // checks performed, in order
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// report is an error in strict mode and a warning otherwise.
func (r *ValidationResult) report(strict bool, format string, args ...any) {
	if strict {
		r.fail(format, args...)
	} else {
		r.warn(format, args...)
	}
}

// ValidateFile checks the file at path. Problems with the file content are
// recorded in the result; the error return is reserved for failures that
// prevent validation from running at all.
//
// In strict mode a format tag other than P3, a maximum value other than
// 255 and a pixel count that disagrees with the header are errors; the
// lenient decoder accepts them, so otherwise they are warnings.
func ValidateFile(path string, strict bool) (*ValidationResult, error) {
	result := &ValidationResult{Valid: true}

	result.Checks = append(result.Checks, "readable")
	data, err := readFile(path)
	if err != nil {
		result.fail("cannot read file: %v", err)
		return result, nil
	}
	if len(data.raw) == 0 {
		result.fail("file is empty")
		return result, nil
	}

	result.Checks = append(result.Checks, "header")
	h, payload, err := splitHeader(data.raw)
	if err != nil {
		result.fail("%v", err)
		return result, nil
	}

	result.Checks = append(result.Checks, "format tag")
	if h.Magic != ppm.Magic {
		result.report(strict, "format tag %q, expected %q", h.Magic, ppm.Magic)
	}

	result.Checks = append(result.Checks, "max value")
	if h.MaxValue != ppm.MaxValue {
		result.report(strict, "maximum channel value line is %d, expected %d", h.MaxValue, ppm.MaxValue)
	}

	if h.Width > largeDimension || h.Height > largeDimension {
		result.warn("very large image dimensions: %dx%d", h.Width, h.Height)
	}

	result.Checks = append(result.Checks, "payload")
	format := SniffFormat(payload)
	img, err := ppm.Decode(bytes.NewReader(data.raw), ppm.DecodeOptions{Format: format})
	if err != nil {
		result.fail("%v", err)
		return result, nil
	}
	if format == ppm.FormatPlain {
		if extra := len(bytes.Fields(payload)) % 3; extra != 0 {
			result.warn("%d trailing channel value(s) ignored", extra)
		}
	}

	result.Checks = append(result.Checks, "dimensions")
	if err := img.Validate(); err != nil {
		result.report(strict, "%v", err)
	}
	if img.Len() == 0 {
		result.warn("image has no pixels")
	}

	return result, nil
}

// ===========================================
// Comparison
// ===========================================

// CompareOptions configures file comparison behavior.
type CompareOptions struct {
	Tolerance        uint8 // maximum allowed per-channel difference
	IgnoreDimensions bool  // compare pixels even if the headers disagree
}

// CompareFiles checks whether two PPM files hold equivalent images, in any
// combination of formats. It returns true if they match within tolerance,
// along with the differences found.
func CompareFiles(path1, path2 string, opts CompareOptions) (bool, []string, error) {
	a, _, err := Load(path1, false)
	if err != nil {
		return false, nil, fmt.Errorf("cannot load %s: %w", path1, err)
	}
	b, _, err := Load(path2, false)
	if err != nil {
		return false, nil, fmt.Errorf("cannot load %s: %w", path2, err)
	}
	diffs := Compare(a, b, opts)
	return len(diffs) == 0, diffs, nil
}

// Compare returns the differences between two images.
func Compare(a, b *ppm.Image, opts CompareOptions) []string {
	var diffs []string

	if !opts.IgnoreDimensions && (a.Width() != b.Width() || a.Height() != b.Height()) {
		diffs = append(diffs, fmt.Sprintf("dimensions differ: %dx%d vs %dx%d",
			a.Width(), a.Height(), b.Width(), b.Height()))
		return diffs
	}
	if a.Len() != b.Len() {
		diffs = append(diffs, fmt.Sprintf("pixel count differs: %d vs %d", a.Len(), b.Len()))
		return diffs
	}

	names := [3]string{"R", "G", "B"}
	var counts [3]int
	var maxDiff [3]uint8
	for i := 0; i < a.Len(); i++ {
		pa, pb := a.PixelAt(i), b.PixelAt(i)
		for c, d := range [3]uint8{absDiff(pa.R, pb.R), absDiff(pa.G, pb.G), absDiff(pa.B, pb.B)} {
			if d > opts.Tolerance {
				counts[c]++
				maxDiff[c] = max(maxDiff[c], d)
			}
		}
	}
	for c := range names {
		if counts[c] > 0 {
			diffs = append(diffs, fmt.Sprintf("channel %s: %d pixels differ (max diff: %d)",
				names[c], counts[c], maxDiff[c]))
		}
	}
	return diffs
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
