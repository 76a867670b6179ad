package ppm

import (
	"errors"
	"image"
	"image/color"
	"math"
	"slices"
	"strings"
	"testing"
)

func TestNewImage(t *testing.T) {
	px := []Pixel{{1, 2, 3}, {4, 5, 6}}
	img := NewImage(px, 2, 1)
	if img.Width() != 2 || img.Height() != 1 || img.Len() != 2 {
		t.Errorf("got %dx%d with %d pixels", img.Width(), img.Height(), img.Len())
	}
	if img.PixelAt(1) != (Pixel{4, 5, 6}) {
		t.Errorf("PixelAt(1) = %v", img.PixelAt(1))
	}
	img.SetPixel(0, Pixel{9, 9, 9})
	if px[0] != (Pixel{9, 9, 9}) {
		t.Error("image does not own the injected slice")
	}
}

func TestClone(t *testing.T) {
	img := testImage()
	c := img.Clone()
	c.Invert()
	if slices.Equal(c.Pixels(), img.Pixels()) {
		t.Error("modifying the clone changed the original")
	}
	if c.Width() != img.Width() || c.Height() != img.Height() {
		t.Error("clone dimensions differ")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		img  *Image
		want error
	}{
		{"ok", testImage(), nil},
		{"short", NewImage(make([]Pixel, 5), 3, 2), ErrDimensionMismatch},
		{"long", NewImage(make([]Pixel, 7), 3, 2), ErrDimensionMismatch},
		{"zero width", NewImage(nil, 0, 2), ErrInvalidDimensions},
		{"negative height", NewImage(nil, 2, -1), ErrInvalidDimensions},
		{"overflow", NewImage(nil, math.MaxInt, 2), ErrDimensionMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.img.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestToRGBA(t *testing.T) {
	img := testImage()
	rgba, err := img.ToRGBA()
	if err != nil {
		t.Fatalf("ToRGBA: %v", err)
	}
	if rgba.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("Bounds() = %v", rgba.Bounds())
	}
	for i, p := range img.Pixels() {
		x, y := i%3, i/3
		if got, want := rgba.RGBAAt(x, y), (color.RGBA{p.R, p.G, p.B, 0xff}); got != want {
			t.Errorf("RGBAAt(%d, %d) = %v, want %v", x, y, got, want)
		}
	}
}

func TestToRGBAMismatchedCount(t *testing.T) {
	img := NewImage([]Pixel{{1, 2, 3}}, 2, 1)
	rgba, err := img.ToRGBA()
	if err != nil {
		t.Fatalf("ToRGBA: %v", err)
	}
	if got := rgba.RGBAAt(1, 0); got != (color.RGBA{}) {
		t.Errorf("missing pixel = %v, want transparent black", got)
	}
}

func TestToRGBARejectsHugeDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"overflow", 3037000500, 3037000500},
		{"over limit", MaxRasterPixels, 2},
		{"zero", 0, 1},
		{"negative", 4, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage([]Pixel{{1, 2, 3}}, tt.width, tt.height)
			rgba, err := img.ToRGBA()
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("ToRGBA() error = %v, want ErrInvalidDimensions", err)
			}
			if rgba != nil {
				t.Errorf("ToRGBA() returned a raster of %v", rgba.Bounds())
			}
		})
	}
}

func TestDecodedHugeHeaderToRGBA(t *testing.T) {
	img, err := DecodePlain(strings.NewReader("P3\n3037000500 3037000500\n255\n1 2 3"))
	if err != nil {
		t.Fatalf("DecodePlain: %v", err)
	}
	if _, err := img.ToRGBA(); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("ToRGBA() error = %v, want ErrInvalidDimensions", err)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 11))
	src.SetRGBA(10, 10, color.RGBA{1, 2, 3, 0xff})
	src.SetRGBA(11, 10, color.RGBA{4, 5, 6, 0xff})

	img := FromImage(src)
	if img.Width() != 2 || img.Height() != 1 {
		t.Fatalf("dimensions = %dx%d, want 2x1", img.Width(), img.Height())
	}
	if want := []Pixel{{1, 2, 3}, {4, 5, 6}}; !slices.Equal(img.Pixels(), want) {
		t.Errorf("pixels = %v, want %v", img.Pixels(), want)
	}

	rgba, err := img.ToRGBA()
	if err != nil {
		t.Fatalf("ToRGBA: %v", err)
	}
	back := FromImage(rgba)
	if !slices.Equal(back.Pixels(), img.Pixels()) {
		t.Error("ToRGBA/FromImage round trip changed pixels")
	}
}
