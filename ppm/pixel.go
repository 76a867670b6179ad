package ppm

import (
	"fmt"
	"strconv"
)

// Pixel is an RGB triple with 8 bits per channel.
type Pixel struct {
	R, G, B uint8
}

// NewPixel returns the pixel (r, g, b).
func NewPixel(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// Invert replaces each channel c with 255-c.
func (p *Pixel) Invert() {
	p.R ^= 0xff
	p.G ^= 0xff
	p.B ^= 0xff
}

// ToGrayscale sets every channel to r/3 + g/3 + b/3.
//
// Each channel is divided before summing, so the result truncates three
// times and can differ from (r+g+b)/3. The sum never exceeds 255.
func (p *Pixel) ToGrayscale() {
	avg := p.R/3 + p.G/3 + p.B/3
	p.R, p.G, p.B = avg, avg, avg
}

// Text returns the plain payload form "r g b " with a trailing space.
func (p Pixel) Text() string {
	return string(p.AppendText(make([]byte, 0, 12)))
}

// AppendText appends the plain payload form of p to dst.
func (p Pixel) AppendText(dst []byte) []byte {
	dst = strconv.AppendUint(dst, uint64(p.R), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendUint(dst, uint64(p.G), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendUint(dst, uint64(p.B), 10)
	return append(dst, ' ')
}

func (p Pixel) String() string {
	return fmt.Sprintf("Pixel (r: %d, g: %d,  b: %d)", p.R, p.G, p.B)
}

// RGBA implements color.Color. Pixels are always opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R)
	r |= r << 8
	g = uint32(p.G)
	g |= g << 8
	b = uint32(p.B)
	b |= b << 8
	return r, g, b, 0xffff
}
