package ppm

import (
	"bytes"
	"image"
	"slices"
	"testing"

	pnm "github.com/jbuchbinder/gopnm"
)

// The plain output is a standard P3 file, so an independent PNM decoder
// must read back the same pixels.
func TestPlainOutputReadableByPNM(t *testing.T) {
	img := testImage()
	var buf bytes.Buffer
	if err := img.EncodePlain(&buf); err != nil {
		t.Fatalf("EncodePlain: %v", err)
	}

	decoded, err := pnm.Decode(&buf)
	if err != nil {
		t.Fatalf("pnm.Decode: %v", err)
	}
	if decoded.Bounds() != image.Rect(0, 0, img.Width(), img.Height()) {
		t.Fatalf("pnm bounds = %v, want %dx%d", decoded.Bounds(), img.Width(), img.Height())
	}
	if got := FromImage(decoded); !slices.Equal(got.Pixels(), img.Pixels()) {
		t.Errorf("pnm pixels = %v, want %v", got.Pixels(), img.Pixels())
	}
}

// Standard P3 files written by another encoder decode to the same image.
func TestDecodePNMWrittenP3(t *testing.T) {
	img := testImage()
	rgba, err := img.ToRGBA()
	if err != nil {
		t.Fatalf("ToRGBA: %v", err)
	}
	var raw bytes.Buffer
	if err := pnm.Encode(&raw, rgba, pnm.PPM); err != nil {
		t.Fatalf("pnm.Encode: %v", err)
	}

	// pnm.Encode writes P6; re-encode the decoded raster as P3 through
	// the standard image registry to exercise both directions.
	m, format, err := image.Decode(&raw)
	if err != nil {
		t.Fatalf("image.Decode: %v", err)
	}
	if format != "ppm raw (rgb)" {
		t.Errorf("registered format = %q", format)
	}

	var plain bytes.Buffer
	if err := FromImage(m).EncodePlain(&plain); err != nil {
		t.Fatalf("EncodePlain: %v", err)
	}
	got, err := Decode(&plain, DecodeOptions{Format: FormatPlain, Strict: true})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !slices.Equal(got.Pixels(), img.Pixels()) {
		t.Errorf("pixels = %v, want %v", got.Pixels(), img.Pixels())
	}
}
