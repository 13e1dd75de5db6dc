// splashgen renders the iOS splash screens for the PWA: the app icon centered
// on the theme color, one PNG per supported device resolution.
//
// Usage: go run ./cmd/splashgen
//
// Paths, colors and the device table are built in; an optional
// splash-config.json (see internal/config) overrides the options.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Mavwarf/splashgen/internal/config"
	"github.com/Mavwarf/splashgen/internal/eventlog"
	"github.com/Mavwarf/splashgen/internal/paths"
	"github.com/Mavwarf/splashgen/internal/report"
	"github.com/Mavwarf/splashgen/internal/runner"
	"github.com/Mavwarf/splashgen/internal/splash"
)

func main() {
	p := report.New(os.Stdout, os.Stderr)

	cfg, err := config.Load("")
	if err != nil {
		p.Error(err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := generate(ctx, cfg, p)
	stop()
	os.Exit(code)
}

// generate runs the whole device table and returns the process exit code:
// 0 when every splash screen was written, 1 otherwise.
func generate(ctx context.Context, cfg config.Config, p *report.Printer) int {
	if err := cfg.Validate(); err != nil {
		p.Error(err)
		return 1
	}
	bg, _ := cfg.BackgroundColor()
	o := cfg.Options

	p.Banner(o.Background, o.Icon, o.OutputDir)

	// A failure here is reported again per spec as an EncodeError.
	if err := paths.EnsureDir(o.OutputDir); err != nil {
		p.Warn("creating %s: %v", o.OutputDir, err)
	}

	history := openHistory(o)
	if history != nil {
		defer history.Close()
	}

	gen := splash.NewGenerator(o.Icon, bg, o.OutputDir, o.IconScale)
	sum := runner.Run(ctx, gen, cfg.Sizes, runner.Options{
		Workers: o.Workers,
		OnResult: func(r runner.Result) {
			p.Result(r)
			if history != nil {
				if err := history.LogResult(r); err != nil {
					fmt.Fprintf(os.Stderr, "eventlog: %v\n", err)
				}
			}
		},
	})

	if history != nil {
		if err := history.LogRun(sum); err != nil {
			fmt.Fprintf(os.Stderr, "eventlog: %v\n", err)
		}
	}

	p.Summary(sum)
	if sum.Failed() > 0 {
		return 1
	}
	return 0
}

// openHistory returns the generation history store, or nil when logging is
// disabled or the store cannot be opened.
func openHistory(o config.Options) eventlog.Store {
	if !o.Log {
		return nil
	}
	s, err := eventlog.OpenDefault(o.LogBackend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eventlog: %v\n", err)
		return nil
	}
	return s
}
