package ppm_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/IlesESGI/libppm/ppm"
)

func ExampleDecode() {
	src := "P3\n2 1\n255\n10 20 30 40 50"
	img, err := ppm.Decode(strings.NewReader(src), ppm.DecodeOptions{Format: ppm.FormatPlain})
	if err != nil {
		fmt.Println("decode:", err)
		return
	}

	// The incomplete trailing group "40 50" is dropped.
	fmt.Println(img.Width(), img.Height(), img.Len())
	fmt.Println(img.PixelAt(0))
	// Output:
	// 2 1 1
	// Pixel (r: 10, g: 20,  b: 30)
}

func ExampleImage_Apply() {
	img := ppm.NewImage([]ppm.Pixel{
		ppm.NewPixel(255, 0, 0),
		ppm.NewPixel(0, 0, 255),
	}, 2, 1)

	if err := img.Apply(ppm.OpInvert, ppm.OpRotate); err != nil {
		fmt.Println("apply:", err)
		return
	}

	var buf bytes.Buffer
	if err := img.Encode(&buf, ppm.FormatPlain); err != nil {
		fmt.Println("encode:", err)
		return
	}
	fmt.Printf("%q\n", buf.String())
	// Output:
	// "P3\n2 1\n255\n255 255 0 0 255 255 "
}

func ExamplePixel_ToGrayscale() {
	p := ppm.NewPixel(255, 0, 0)
	p.ToGrayscale()
	fmt.Println(p)
	// Output:
	// Pixel (r: 85, g: 85,  b: 85)
}

func ExampleHeaderError() {
	_, err := ppm.DecodePlain(strings.NewReader("P3\n0 1\n255\n"))

	var he *ppm.HeaderError
	if errors.As(err, &he) {
		fmt.Println("header line:", he.Line)
	}
	fmt.Println(errors.Is(err, ppm.ErrInvalidDimensions))
	// Output:
	// header line: 2
	// true
}
