// Package icon renders the placeholder app icon: an orange disc with a white
// list glyph on a transparent background.
package icon

import (
	"image"
	"image/color"
	"math"
)

var (
	Accent = color.NRGBA{R: 0xF9, G: 0x73, B: 0x16, A: 0xff}
	Glyph  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Draw returns a size×size icon. Pixels outside the disc are fully
// transparent; the disc edge is anti-aliased over one pixel.
func Draw(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	r := c * 0.94

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			cov := r - math.Hypot(dx, dy) + 0.5
			if cov <= 0 {
				continue
			}
			px := Accent
			if inGlyph(float64(x)/float64(size), float64(y)/float64(size)) {
				px = Glyph
			}
			if cov < 1 {
				px.A = uint8(cov * 255)
			}
			img.SetNRGBA(x, y, px)
		}
	}
	return img
}

// inGlyph reports whether the normalized point (u, v) falls on one of the
// three list rows: a bullet on the left and a bar to its right.
func inGlyph(u, v float64) bool {
	for _, row := range []float64{0.32, 0.5, 0.68} {
		if v < row-0.04 || v > row+0.04 {
			continue
		}
		if math.Hypot(u-0.3, v-row) <= 0.045 {
			return true
		}
		if u >= 0.4 && u <= 0.72 {
			return true
		}
	}
	return false
}

// Opaque returns a fully opaque width×height image in a single color.
func Opaque(width, height int, c color.NRGBA) *image.NRGBA {
	c.A = 0xff
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}
