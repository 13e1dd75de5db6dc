// Package report prints run progress for humans: a banner, one line per
// splash screen and a closing summary.
package report

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Mavwarf/splashgen/internal/runner"
)

// Glyphs are the status markers printed before each line.
type Glyphs struct {
	Start, OK, Fail, Done, Warn, Ready string
}

var (
	Emoji = Glyphs{Start: "🎨", OK: "✅", Fail: "❌", Done: "✨", Warn: "⚠️ ", Ready: "📱"}
	Plain = Glyphs{Start: "[start]", OK: "[ok]", Fail: "[fail]", Done: "[done]", Warn: "[warn]", Ready: "[ready]"}
)

// Printer writes progress to out and failures to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	g      Glyphs
}

// New returns a Printer that uses emoji glyphs when out is a terminal and
// plain ASCII markers otherwise.
func New(out, errOut io.Writer) *Printer {
	g := Plain
	if isTerminal(out) {
		g = Emoji
	}
	return NewWithGlyphs(out, errOut, g)
}

// NewWithGlyphs returns a Printer using the given glyph set.
func NewWithGlyphs(out, errOut io.Writer, g Glyphs) *Printer {
	return &Printer{out: out, errOut: errOut, g: g}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Banner prints the run header.
func (p *Printer) Banner(background, iconPath, outputDir string) {
	fmt.Fprintf(p.out, "%s Generating iOS splash screens...\n\n", p.g.Start)
	fmt.Fprintf(p.out, "Background color: %s\n", background)
	fmt.Fprintf(p.out, "Icon source: %s\n", iconPath)
	fmt.Fprintf(p.out, "Output directory: %s\n\n", outputDir)
}

// Result prints one line for a finished attempt.
func (p *Printer) Result(r runner.Result) {
	s := r.Spec
	if r.Err != nil {
		fmt.Fprintf(p.errOut, "%s Failed to generate %s: %v\n", p.g.Fail, s.Name, r.Err)
		return
	}
	fmt.Fprintf(p.out, "%s Generated: %s (%dx%d) - %s\n", p.g.OK, s.Name, s.Width, s.Height, s.Device)
}

// Summary prints the closing lines.
func (p *Printer) Summary(sum runner.Summary) {
	if sum.Failed() == 0 {
		fmt.Fprintf(p.out, "\n%s All splash screens generated successfully!\n", p.g.Done)
		fmt.Fprintf(p.out, "\n%s Splash screens are now ready for iOS PWA installation.\n", p.g.Ready)
		return
	}
	fmt.Fprintf(p.out, "\n%s Generated %d of %d splash screens (%d failed)\n",
		p.g.Warn, sum.OK(), len(sum.Results), sum.Failed())
}

// Warn prints a non-fatal problem to errOut.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.errOut, "%s %s\n", p.g.Warn, fmt.Sprintf(format, args...))
}

// Error prints a fatal error that stops the run before generation.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.errOut, "%s Fatal error: %v\n", p.g.Fail, err)
}
