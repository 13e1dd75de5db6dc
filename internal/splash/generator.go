package splash

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	// DefaultScale is the icon size as a fraction of the canvas's shorter side.
	DefaultScale = 0.30
)

// Generator renders splash screens from a single source icon. The icon is
// decoded once by NewGenerator and shared read-only across Generate calls,
// so a Generator is safe for concurrent use as long as every spec writes a
// distinct file.
type Generator struct {
	iconPath   string
	icon       *image.NRGBA
	iconErr    error
	background color.NRGBA
	outputDir  string
	scale      float64
}

// NewGenerator loads the icon at iconPath and returns a Generator writing
// into outputDir. A load failure does not fail construction: every later
// Generate call reports it as a *DecodeError so that each spec is still
// attempted and reported on its own.
func NewGenerator(iconPath string, background color.NRGBA, outputDir string, scale float64) *Generator {
	g := &Generator{
		iconPath:   iconPath,
		background: background,
		outputDir:  outputDir,
		scale:      scale,
	}
	g.icon, g.iconErr = LoadIcon(iconPath)
	return g
}

// NewGeneratorFromImage returns a Generator using an already decoded icon.
func NewGeneratorFromImage(icon image.Image, background color.NRGBA, outputDir string, scale float64) *Generator {
	g := &Generator{
		iconPath:   "<memory>",
		background: background,
		outputDir:  outputDir,
		scale:      scale,
	}
	if icon == nil || icon.Bounds().Empty() {
		g.iconErr = &DecodeError{Path: g.iconPath, Err: image.ErrFormat}
	} else {
		g.icon = imaging.Clone(icon)
	}
	return g
}

// IconErr returns the error from loading the icon, or nil.
func (g *Generator) IconErr() error { return g.iconErr }

// OutputPath returns where the image for spec is written.
func (g *Generator) OutputPath(spec Spec) string {
	return filepath.Join(g.outputDir, spec.Name)
}

// Render validates spec and returns the composed canvas together with the
// rectangle covered by the icon. Nothing is written.
func (g *Generator) Render(spec Spec) (*image.NRGBA, image.Rectangle, error) {
	if err := spec.Validate(); err != nil {
		return nil, image.Rectangle{}, err
	}
	if g.iconErr != nil {
		return nil, image.Rectangle{}, g.iconErr
	}
	target := TargetSize(spec.Width, spec.Height, g.scale)
	if target < 1 {
		return nil, image.Rectangle{}, &ConfigError{
			Field:  "size",
			Reason: fmt.Sprintf("%dx%d leaves no room for the icon at scale %.2f", spec.Width, spec.Height, g.scale),
		}
	}
	icon := FitIcon(g.icon, target)
	canvas, rect := Compose(spec.Width, spec.Height, g.background, icon)
	return canvas, rect, nil
}

// Generate renders spec and writes it to OutputPath(spec), replacing any
// existing file.
func (g *Generator) Generate(spec Spec) error {
	canvas, _, err := g.Render(spec)
	if err != nil {
		return err
	}
	return WritePNG(g.OutputPath(spec), canvas)
}
