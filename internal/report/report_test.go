package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Mavwarf/splashgen/internal/runner"
	"github.com/Mavwarf/splashgen/internal/splash"
)

func newTestPrinter(g Glyphs) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewWithGlyphs(&out, &errOut, g), &out, &errOut
}

func TestNewUsesPlainForBuffers(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &out)
	if p.g != Plain {
		t.Errorf("glyphs = %+v, want Plain", p.g)
	}
}

func TestBanner(t *testing.T) {
	p, out, _ := newTestPrinter(Emoji)
	p.Banner("#FFF6E6", "static/icons/icon-512x512.png", "static/splash")
	got := out.String()
	for _, want := range []string{
		"🎨 Generating iOS splash screens...\n\n",
		"Background color: #FFF6E6\n",
		"Icon source: static/icons/icon-512x512.png\n",
		"Output directory: static/splash\n\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("banner missing %q in:\n%s", want, got)
		}
	}
}

func TestResultSuccess(t *testing.T) {
	p, out, errOut := newTestPrinter(Emoji)
	p.Result(runner.Result{Spec: splash.NewSpec(750, 1334, "iPhone 8/SE")})
	want := "✅ Generated: apple-splash-750-1334.png (750x1334) - iPhone 8/SE\n"
	if out.String() != want {
		t.Errorf("out = %q, want %q", out.String(), want)
	}
	if errOut.Len() != 0 {
		t.Errorf("errOut = %q, want empty", errOut.String())
	}
}

func TestResultFailure(t *testing.T) {
	p, out, errOut := newTestPrinter(Plain)
	p.Result(runner.Result{Spec: splash.NewSpec(750, 1334, "iPhone 8/SE"), Err: errors.New("disk full")})
	want := "[fail] Failed to generate apple-splash-750-1334.png: disk full\n"
	if errOut.String() != want {
		t.Errorf("errOut = %q, want %q", errOut.String(), want)
	}
	if out.Len() != 0 {
		t.Errorf("out = %q, want empty", out.String())
	}
}

func TestSummaryAllOK(t *testing.T) {
	p, out, _ := newTestPrinter(Plain)
	p.Summary(runner.Summary{Results: []runner.Result{{}, {}}})
	if !strings.Contains(out.String(), "[done] All splash screens generated successfully!") {
		t.Errorf("out = %q", out.String())
	}
}

func TestSummaryWithFailures(t *testing.T) {
	p, out, _ := newTestPrinter(Plain)
	p.Summary(runner.Summary{Results: []runner.Result{{}, {Err: errors.New("x")}, {Err: errors.New("y")}}})
	want := "\n[warn] Generated 1 of 3 splash screens (2 failed)\n"
	if out.String() != want {
		t.Errorf("out = %q, want %q", out.String(), want)
	}
}

func TestWarn(t *testing.T) {
	p, _, errOut := newTestPrinter(Plain)
	p.Warn("creating %s: %v", "static/splash", "permission denied")
	want := "[warn] creating static/splash: permission denied\n"
	if errOut.String() != want {
		t.Errorf("errOut = %q, want %q", errOut.String(), want)
	}
}
