package splash

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// TargetSize returns the largest side length the icon may have on a
// width×height canvas: floor(min(width, height) * scale).
func TargetSize(width, height int, scale float64) int {
	return int(math.Floor(float64(min(width, height)) * scale))
}

// FitIcon scales icon down so its longest side is at most target, keeping
// the aspect ratio. Icons that already fit are returned as an NRGBA copy at
// their original size; FitIcon never upscales.
func FitIcon(icon image.Image, target int) *image.NRGBA {
	return imaging.Fit(icon, target, target, imaging.Lanczos)
}

// Offset returns the top-left position that centers an iconW×iconH image on
// a width×height canvas, rounding down.
func Offset(width, height, iconW, iconH int) image.Point {
	return image.Pt((width-iconW)/2, (height-iconH)/2)
}

// Compose returns an opaque width×height canvas filled with bg with icon
// alpha-composited at its center, along with the rectangle the icon covers.
func Compose(width, height int, bg color.NRGBA, icon image.Image) (*image.NRGBA, image.Rectangle) {
	bg.A = 0xff
	canvas := imaging.New(width, height, bg)

	size := icon.Bounds().Size()
	pos := Offset(width, height, size.X, size.Y)
	canvas = imaging.Overlay(canvas, icon, pos, 1.0)
	return canvas, image.Rectangle{Min: pos, Max: pos.Add(size)}
}
