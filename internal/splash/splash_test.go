package splash

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Mavwarf/splashgen/internal/icon"
)

var peach = color.NRGBA{R: 0xFF, G: 0xF6, B: 0xE6, A: 0xff}

// table mirrors the built-in device list.
var table = []Spec{
	NewSpec(2048, 2732, `12.9" iPad Pro`),
	NewSpec(1668, 2388, `11" iPad Pro`),
	NewSpec(1536, 2048, `9.7" iPad`),
	NewSpec(1290, 2796, "iPhone 14 Pro Max"),
	NewSpec(1179, 2556, "iPhone 14 Pro"),
	NewSpec(1170, 2532, "iPhone 13/14"),
	NewSpec(1125, 2436, "iPhone X/XS/11 Pro"),
	NewSpec(1284, 2778, "iPhone 12/13 Pro Max"),
	NewSpec(750, 1334, "iPhone 8/SE"),
}

func writeIcon(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icon.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	return img
}

func TestTargetSize(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{750, 1334, 225},
		{2048, 2732, 614},
		{1668, 2388, 500},
		{1125, 2436, 337},
		{2796, 1290, 387},
		{3, 3, 0},
	}
	for _, tt := range tests {
		if got := TargetSize(tt.w, tt.h, DefaultScale); got != tt.want {
			t.Errorf("TargetSize(%d, %d) = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestFitIconSquare(t *testing.T) {
	got := FitIcon(icon.Draw(512), 225)
	if b := got.Bounds(); b.Dx() != 225 || b.Dy() != 225 {
		t.Errorf("bounds = %v, want 225x225", b)
	}
}

func TestFitIconPreservesAspect(t *testing.T) {
	got := FitIcon(icon.Opaque(400, 200, peach), 100)
	if b := got.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("bounds = %v, want 100x50", b)
	}
	got = FitIcon(icon.Opaque(200, 400, peach), 100)
	if b := got.Bounds(); b.Dx() != 50 || b.Dy() != 100 {
		t.Errorf("bounds = %v, want 50x100", b)
	}
}

func TestFitIconNeverUpscales(t *testing.T) {
	got := FitIcon(icon.Draw(512), 614)
	if b := got.Bounds(); b.Dx() != 512 || b.Dy() != 512 {
		t.Errorf("bounds = %v, want 512x512", b)
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		w, h, iw, ih int
		want         image.Point
	}{
		{750, 1334, 225, 225, image.Pt(262, 554)},
		{10, 10, 3, 3, image.Pt(3, 3)},
		{11, 12, 4, 5, image.Pt(3, 3)},
	}
	for _, tt := range tests {
		if got := Offset(tt.w, tt.h, tt.iw, tt.ih); got != tt.want {
			t.Errorf("Offset(%d, %d, %d, %d) = %v, want %v", tt.w, tt.h, tt.iw, tt.ih, got, tt.want)
		}
	}
}

func TestRenderTable(t *testing.T) {
	// A source larger than every target exercises the fit bound.
	g := NewGeneratorFromImage(icon.Draw(1024), peach, t.TempDir(), DefaultScale)
	for _, spec := range table {
		canvas, rect, err := g.Render(spec)
		if err != nil {
			t.Fatalf("%s: %v", spec, err)
		}
		if b := canvas.Bounds(); b.Dx() != spec.Width || b.Dy() != spec.Height {
			t.Errorf("%s: canvas %v", spec, b)
		}
		bound := TargetSize(spec.Width, spec.Height, DefaultScale)
		if rect.Dx() > bound || rect.Dy() > bound {
			t.Errorf("%s: icon %dx%d exceeds %d", spec, rect.Dx(), rect.Dy(), bound)
		}
		if rect.Dx() != bound && rect.Dy() != bound {
			t.Errorf("%s: icon %dx%d does not reach %d", spec, rect.Dx(), rect.Dy(), bound)
		}
		want := Offset(spec.Width, spec.Height, rect.Dx(), rect.Dy())
		if rect.Min != want {
			t.Errorf("%s: offset %v, want %v", spec, rect.Min, want)
		}
	}
}

func TestRenderBackgroundOutsideIcon(t *testing.T) {
	g := NewGeneratorFromImage(icon.Draw(512), peach, t.TempDir(), DefaultScale)
	canvas, rect, err := g.Render(NewSpec(750, 1334, "iPhone 8/SE"))
	if err != nil {
		t.Fatal(err)
	}
	b := canvas.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if image.Pt(x, y).In(rect) {
				continue
			}
			if got := canvas.NRGBAAt(x, y); got != peach {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, peach)
			}
		}
	}
}

func TestRenderTransparentKeepsBackground(t *testing.T) {
	g := NewGeneratorFromImage(icon.Draw(512), peach, t.TempDir(), DefaultScale)
	canvas, rect, err := g.Render(NewSpec(750, 1334, "iPhone 8/SE"))
	if err != nil {
		t.Fatal(err)
	}
	// The icon's corners are transparent, so the canvas shows the background there.
	if got := canvas.NRGBAAt(rect.Min.X, rect.Min.Y); got != peach {
		t.Errorf("icon corner = %v, want background %v", got, peach)
	}
	// The disc itself is opaque accent color.
	mid := canvas.NRGBAAt(rect.Min.X+rect.Dx()/2, rect.Min.Y+rect.Dy()/10)
	if mid == peach || mid.A != 0xff {
		t.Errorf("icon body = %v, expected opaque icon pixel", mid)
	}
}

func TestGenerateConcreteScenario(t *testing.T) {
	out := t.TempDir()
	g := NewGenerator(writeIcon(t, icon.Opaque(512, 512, icon.Accent)), peach, out, DefaultScale)
	if err := g.IconErr(); err != nil {
		t.Fatal(err)
	}
	spec := NewSpec(750, 1334, "iPhone 8/SE")
	if spec.Name != "apple-splash-750-1334.png" {
		t.Fatalf("Name = %q", spec.Name)
	}
	if err := g.Generate(spec); err != nil {
		t.Fatal(err)
	}

	img := readPNG(t, filepath.Join(out, spec.Name))
	if b := img.Bounds(); b.Dx() != 750 || b.Dy() != 1334 {
		t.Fatalf("bounds = %v, want 750x1334", b)
	}
	// Icon occupies [262,487) x [554,779).
	checks := []struct {
		x, y int
		want color.NRGBA
	}{
		{261, 554, peach},
		{262, 554, icon.Accent},
		{486, 778, icon.Accent},
		{487, 778, peach},
		{486, 779, peach},
		{262, 553, peach},
	}
	for _, c := range checks {
		got := color.NRGBAModel.Convert(img.At(c.x, c.y)).(color.NRGBA)
		if got != c.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	out := t.TempDir()
	g := NewGenerator(writeIcon(t, icon.Draw(256)), peach, out, DefaultScale)
	spec := NewSpec(300, 500, "test")

	if err := g.Generate(spec); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(g.OutputPath(spec))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Generate(spec); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(g.OutputPath(spec))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("second run produced different bytes")
	}
}

func TestGenerateMissingIcon(t *testing.T) {
	out := t.TempDir()
	g := NewGenerator(filepath.Join(out, "nope.png"), peach, out, DefaultScale)

	for _, spec := range table {
		err := g.Generate(spec)
		var de *DecodeError
		if !errors.As(err, &de) {
			t.Fatalf("%s: err = %v, want *DecodeError", spec, err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s: err = %v, want wrapped ErrNotExist", spec, err)
		}
	}
	entries, _ := os.ReadDir(out)
	if len(entries) != 0 {
		t.Errorf("output dir has %d entries, want 0", len(entries))
	}
}

func TestGenerateCorruptIcon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	g := NewGenerator(path, peach, t.TempDir(), DefaultScale)
	var de *DecodeError
	if err := g.Generate(NewSpec(100, 100, "x")); !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DecodeError", err)
	}
}

func TestGenerateUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the output directory should be.
	blocker := filepath.Join(dir, "splash")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	g := NewGeneratorFromImage(icon.Draw(64), peach, blocker, DefaultScale)
	err := g.Generate(NewSpec(100, 200, "x"))
	var ee *EncodeError
	if !errors.As(err, &ee) {
		t.Fatalf("err = %v, want *EncodeError", err)
	}
	if ee.Path != filepath.Join(blocker, "apple-splash-100-200.png") {
		t.Errorf("Path = %q", ee.Path)
	}
}

func TestGenerateInvalidSpec(t *testing.T) {
	g := NewGeneratorFromImage(icon.Draw(64), peach, t.TempDir(), DefaultScale)
	tests := []Spec{
		{Width: 0, Height: 100, Name: "a.png"},
		{Width: 100, Height: -1, Name: "a.png"},
		{Width: 100, Height: 100, Name: ""},
		{Width: 100, Height: 100, Name: "../a.png"},
		{Width: 100, Height: 100, Name: "sub/a.png"},
		{Width: 2, Height: 2, Name: "tiny.png"},
	}
	for _, spec := range tests {
		var ce *ConfigError
		if err := g.Generate(spec); !errors.As(err, &ce) {
			t.Errorf("%+v: err = %v, want *ConfigError", spec, err)
		}
	}
}

func TestNewGeneratorFromNilImage(t *testing.T) {
	g := NewGeneratorFromImage(nil, peach, t.TempDir(), DefaultScale)
	var de *DecodeError
	if err := g.Generate(NewSpec(100, 100, "x")); !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DecodeError", err)
	}
}
