package splash

import (
	"bytes"
	"image"
	"image/png"

	// Icon sources beyond the standard library's PNG/JPEG/GIF decoders.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"

	"github.com/Mavwarf/splashgen/internal/paths"
)

// LoadIcon opens and decodes the icon at path and converts it to NRGBA.
// Any failure is returned as a *DecodeError.
func LoadIcon(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, &DecodeError{Path: path, Err: image.ErrFormat}
	}
	return imaging.Clone(img), nil
}

// EncodePNG encodes img as a PNG with maximum compression. The encoder
// writes no time or text chunks, so equal images encode to equal bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePNG encodes img and atomically replaces the file at path. Any
// failure is returned as an *EncodeError.
func WritePNG(path string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if err := paths.AtomicWrite(path, data); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}
