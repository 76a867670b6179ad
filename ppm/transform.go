package ppm

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Invert inverts every pixel in place.
func (m *Image) Invert() {
	forEachPixel(m.pixels, (*Pixel).Invert)
}

// ToGrayscale converts every pixel to gray in place.
func (m *Image) ToGrayscale() {
	forEachPixel(m.pixels, (*Pixel).ToGrayscale)
}

// Rotate rotates the image by 180 degrees in place. Reversing a row-major
// sequence end to end flips both axes, whatever the dimensions.
func (m *Image) Rotate() {
	slices.Reverse(m.pixels)
}

func forEachPixel(pixels []Pixel, op func(*Pixel)) {
	ParallelFor(len(pixels), func(start, end int) {
		for i := start; i < end; i++ {
			op(&pixels[i])
		}
	})
}

// Operation is a whole-image transform.
type Operation int

// Numbering follows the menu of the interactive front end.
const (
	OpInvert Operation = iota
	OpGrayscale
	OpRotate
)

var operationNames = [...]string{
	OpInvert:    "invert",
	OpGrayscale: "grayscale",
	OpRotate:    "rotate",
}

func (op Operation) String() string {
	if op >= 0 && int(op) < len(operationNames) {
		return operationNames[op]
	}
	return "Operation(" + strconv.Itoa(int(op)) + ")"
}

// ParseOperation accepts an operation name or its menu number.
func ParseOperation(s string) (Operation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "gray", "grey", "greyscale":
		return OpGrayscale, nil
	case "rotate180":
		return OpRotate, nil
	}
	for i, name := range operationNames {
		if s == name || s == strconv.Itoa(i) {
			return Operation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Apply runs ops on m in order. It fails before touching any pixel if an
// operation is unknown.
func (m *Image) Apply(ops ...Operation) error {
	for _, op := range ops {
		if op < 0 || int(op) >= len(operationNames) {
			return fmt.Errorf("%w: %v", ErrUnknownOperation, op)
		}
	}
	for _, op := range ops {
		switch op {
		case OpInvert:
			m.Invert()
		case OpGrayscale:
			m.ToGrayscale()
		case OpRotate:
			m.Rotate()
		}
	}
	return nil
}
