package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Mavwarf/splashgen/internal/splash"
)

// Generator produces the output for a single spec.
type Generator interface {
	Generate(spec splash.Spec) error
}

// Result is the outcome of one generation attempt.
type Result struct {
	Spec    splash.Spec
	Err     error
	Elapsed time.Duration
}

// OK reports whether the attempt succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Summary collects the results of a run in spec order.
type Summary struct {
	Results []Result
	Elapsed time.Duration
}

// OK returns the number of successful attempts.
func (s Summary) OK() int {
	n := 0
	for _, r := range s.Results {
		if r.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of failed attempts.
func (s Summary) Failed() int {
	return len(s.Results) - s.OK()
}

// Err joins the per-spec errors, each prefixed with the spec's file name.
// It returns nil when every attempt succeeded.
func (s Summary) Err() error {
	var errs []error
	for _, r := range s.Results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Spec.Name, r.Err))
		}
	}
	return errors.Join(errs...)
}

// Options controls how Run schedules work.
type Options struct {
	// Workers is the number of specs generated concurrently. Values below
	// 2 generate sequentially in spec order.
	Workers int

	// OnResult, if set, is called once per attempt as it finishes. Calls
	// are serialized.
	OnResult func(Result)
}

// Run attempts every spec and never stops early on a failure. A cancelled
// context marks the specs that have not started yet as failed with the
// context's error. The returned Summary lists results in spec order.
func Run(ctx context.Context, gen Generator, specs []splash.Spec, opts Options) Summary {
	start := time.Now()
	results := make([]Result, len(specs))

	var mu sync.Mutex
	report := func(r Result) {
		if opts.OnResult == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		opts.OnResult(r)
	}

	if opts.Workers < 2 {
		for i, spec := range specs {
			results[i] = attempt(ctx, gen, spec)
			report(results[i])
		}
		return Summary{Results: results, Elapsed: time.Since(start)}
	}

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for i, spec := range specs {
		g.Go(func() error {
			results[i] = attempt(ctx, gen, spec)
			report(results[i])
			return nil
		})
	}
	g.Wait()

	return Summary{Results: results, Elapsed: time.Since(start)}
}

// attempt runs one spec, turning a panic in the generator into an error so
// the remaining specs still run.
func attempt(ctx context.Context, gen Generator, spec splash.Spec) (r Result) {
	r.Spec = spec
	if err := ctx.Err(); err != nil {
		r.Err = err
		return r
	}
	start := time.Now()
	defer func() {
		r.Elapsed = time.Since(start)
		if p := recover(); p != nil {
			r.Err = fmt.Errorf("panic: %v", p)
		}
	}()
	r.Err = gen.Generate(spec)
	return r
}
