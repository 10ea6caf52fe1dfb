// Package render turns a finished escape-time field into an image.
package render

import (
	"image"
	"image/color"

	"uk.ac.bris.cs/mandelbrot/mandel"
)

// Background is the colour of points that never diverged.
var Background = color.RGBA{0, 0, 0, 255}

// Palette is a wheel of colours indexed by escape time.
type Palette []color.RGBA

// MakePalette builds the 1530-entry colour wheel: six 255-step ramps,
// red to yellow to green to cyan to blue to magenta and back to red.
func MakePalette() Palette {
	wheel := make(Palette, 0, 1530)
	for g := 0; g != 255; g++ {
		wheel = append(wheel, color.RGBA{255, uint8(g), 0, 255})
	}
	for r := 255; r != 0; r-- {
		wheel = append(wheel, color.RGBA{uint8(r), 255, 0, 255})
	}
	for b := 0; b != 255; b++ {
		wheel = append(wheel, color.RGBA{0, 255, uint8(b), 255})
	}
	for g := 255; g != 0; g-- {
		wheel = append(wheel, color.RGBA{0, uint8(g), 255, 255})
	}
	for r := 0; r != 255; r++ {
		wheel = append(wheel, color.RGBA{uint8(r), 0, 255, 255})
	}
	for b := 255; b != 0; b-- {
		wheel = append(wheel, color.RGBA{255, 0, uint8(b), 255})
	}
	return wheel
}

// Paint maps an escape time to its colour. density stretches the wheel
// so that neighbouring escape times are easier to tell apart.
func (p Palette) Paint(t mandel.EscapeTime, density int) color.RGBA {
	if !t.Escaped() {
		return Background
	}
	return p[(int(t-1)*density)%len(p)]
}

// Image renders the whole field with the given palette.
func Image(f *mandel.Field, pal Palette, density int) *image.RGBA {
	size := f.Size()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y != size; y++ {
		for x := 0; x != size; x++ {
			img.SetRGBA(x, y, pal.Paint(f.At(x, y), density))
		}
	}
	return img
}
