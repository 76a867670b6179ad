package ppm

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Image is a row-major sequence of pixels with width and height metadata.
//
// Decoding trusts the header dimensions, so Len may differ from
// Width*Height unless the image was decoded in strict mode or checked
// with Validate. Transforms never change Len.
type Image struct {
	pixels []Pixel
	width  int
	height int
}

// NewImage returns an image that takes ownership of pixels.
func NewImage(pixels []Pixel, width, height int) *Image {
	return &Image{pixels: pixels, width: width, height: height}
}

// Width returns the declared width.
func (m *Image) Width() int { return m.width }

// Height returns the declared height.
func (m *Image) Height() int { return m.height }

// Len returns the number of pixels actually held.
func (m *Image) Len() int { return len(m.pixels) }

// Pixels returns the pixel slice. It is owned by the image; writes through
// it modify the image.
func (m *Image) Pixels() []Pixel { return m.pixels }

// PixelAt returns the i-th pixel in row-major order.
func (m *Image) PixelAt(i int) Pixel { return m.pixels[i] }

// SetPixel replaces the i-th pixel.
func (m *Image) SetPixel(i int, p Pixel) { m.pixels[i] = p }

// Clone returns a deep copy of m.
func (m *Image) Clone() *Image {
	pixels := make([]Pixel, len(m.pixels))
	copy(pixels, m.pixels)
	return NewImage(pixels, m.width, m.height)
}

// Validate checks that the dimensions are positive and agree with the
// number of pixels.
func (m *Image) Validate() error {
	if m.width <= 0 || m.height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, m.width, m.height)
	}
	if m.width > math.MaxInt/m.height {
		return fmt.Errorf("%w: %dx%d overflows", ErrDimensionMismatch, m.width, m.height)
	}
	if want := m.width * m.height; len(m.pixels) != want {
		return fmt.Errorf("%w: %dx%d needs %d pixels, have %d",
			ErrDimensionMismatch, m.width, m.height, want, len(m.pixels))
	}
	return nil
}

// MaxRasterPixels bounds the area of the raster ToRGBA allocates.
const MaxRasterPixels = 1 << 28

// ToRGBA converts m to an *image.RGBA of size Width x Height.
// Missing pixels stay transparent black; extra pixels are ignored.
// Dimensions that are not positive or whose area exceeds MaxRasterPixels
// are rejected with ErrInvalidDimensions.
func (m *Image) ToRGBA() (*image.RGBA, error) {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 || w > MaxRasterPixels/h {
		return nil, fmt.Errorf("%w: %dx%d cannot be rasterized", ErrInvalidDimensions, w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	n := min(len(m.pixels), w*h)
	for i := 0; i < n; i++ {
		off := i * 4
		p := m.pixels[i]
		img.Pix[off] = p.R
		img.Pix[off+1] = p.G
		img.Pix[off+2] = p.B
		img.Pix[off+3] = 0xff
	}
	return img, nil
}

// FromImage converts any image.Image to an Image. Colors go through
// color.RGBAModel, so alpha is applied and then dropped, and deeper color
// models are reduced to 8 bits per channel.
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]Pixel, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			pixels = append(pixels, Pixel{R: c.R, G: c.G, B: c.B})
		}
	}
	return NewImage(pixels, w, h)
}
