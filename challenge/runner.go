// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package challenge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrTimeout fails a case that ran past the runner timeout.
	ErrTimeout = errors.New("challenge: case timed out")
	// ErrPanic fails a case whose submission panicked at run time.
	ErrPanic = errors.New("challenge: submission panicked")
	// ErrReferenceFailed is returned by Verify when a reference solution fails.
	ErrReferenceFailed = errors.New("challenge: reference solution failed")
)

// Recorder persists solved challenges.
type Recorder interface {
	MarkCompleted(ctx context.Context, id, runID string) error
}

// Result is the outcome of one case.
type Result struct {
	Description string
	Passed      bool
	Got         any
	Want        any
	// Diff is the go-cmp diff (-want +got) when the values differ.
	Diff string
	// Output is whatever the submission printed.
	Output string
	Err    error
}

// Report is the outcome of one run.
type Report struct {
	RunID       string
	ChallengeID string
	Results     []Result
	Passed      bool
	Elapsed     time.Duration
}

// PassedCount returns the number of passing cases.
func (r *Report) PassedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// Runner interprets submissions. The zero value is not usable; call
// [NewRunner].
type Runner struct {
	timeout     time.Duration
	parallelism int
	debounce    time.Duration
	allowed     map[string]bool
	logger      *zap.Logger
	recorder    Recorder
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout bounds each case.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithParallelism bounds concurrent reference runs in Verify.
func WithParallelism(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// WithAllowedImports replaces the import allowlist.
func WithAllowedImports(paths ...string) Option {
	return func(r *Runner) {
		r.allowed = make(map[string]bool, len(paths))
		for _, p := range paths {
			r.allowed[p] = true
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRecorder records challenges whose every case passes.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) { r.recorder = rec }
}

// WithDebounce sets how long Watch waits after the last write.
func WithDebounce(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.debounce = d
		}
	}
}

// NewRunner returns a Runner with a 2s case timeout, parallelism 4, and
// fmt, strings, strconv allowed.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		timeout:     2 * time.Second,
		parallelism: 4,
		debounce:    200 * time.Millisecond,
		allowed:     map[string]bool{"fmt": true, "strings": true, "strconv": true},
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run grades src against c. Syntax errors, forbidden imports, and a
// missing export fail the whole run with an error; anything that goes
// wrong inside a case fails only that case. A fully passing run is
// recorded.
func (r *Runner) Run(ctx context.Context, c *Challenge, src string) (*Report, error) {
	rep, err := r.run(ctx, c, src)
	if err != nil {
		return nil, err
	}
	if rep.Passed && r.recorder != nil {
		if err := r.recorder.MarkCompleted(ctx, c.ID, rep.RunID); err != nil {
			r.logger.Warn("failed to record completion",
				zap.String("challenge", c.ID),
				zap.String("run_id", rep.RunID),
				zap.Error(err))
		}
	}
	return rep, nil
}

func (r *Runner) run(ctx context.Context, c *Challenge, src string) (*Report, error) {
	runID := uuid.NewString()
	log := r.logger.With(zap.String("run_id", runID), zap.String("challenge", c.ID))

	sub, err := parseSubmission(src)
	if err != nil {
		log.Debug("rejected submission", zap.Error(err))
		return nil, err
	}
	if err := sub.validate(r.allowed, c.ExportName); err != nil {
		log.Debug("rejected submission", zap.Error(err))
		return nil, err
	}

	start := time.Now()
	prelude := Prelude(c.ExportName)
	rep := &Report{RunID: runID, ChallengeID: c.ID, Passed: true}
	for _, tc := range c.Cases {
		res := r.runCase(ctx, sub.program(prelude, tc), tc)
		if !res.Passed {
			rep.Passed = false
		}
		log.Debug("case",
			zap.String("case", tc.Description),
			zap.Bool("passed", res.Passed),
			zap.Error(res.Err))
		rep.Results = append(rep.Results, res)
	}
	rep.Elapsed = time.Since(start)

	log.Info("challenge run",
		zap.Int("passed", rep.PassedCount()),
		zap.Int("total", len(rep.Results)),
		zap.Duration("elapsed", rep.Elapsed))
	return rep, nil
}

func (r *Runner) runCase(ctx context.Context, prog string, tc Case) Result {
	res := Result{Description: tc.Description}

	want, err := tc.Want()
	if err != nil {
		res.Err = fmt.Errorf("computing expected value: %w", err)
		return res
	}
	res.Want = want

	got, out, err := r.eval(ctx, prog)
	res.Output = out
	if err != nil {
		res.Err = err
		return res
	}
	res.Got = got
	if diff := cmp.Diff(want, got); diff != "" {
		res.Diff = diff
		return res
	}
	res.Passed = true
	return res
}

// eval interprets prog in a fresh interpreter and evaluates a call to
// its check function, bounded by the runner timeout. yaegi stops the
// interpreted code when ctx is done.
func (r *Runner) eval(ctx context.Context, prog string) (any, string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var out bytes.Buffer
	i := interp.New(interp.Options{Stdout: &out, Stderr: &out})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, "", fmt.Errorf("failed to load stdlib: %w", err)
	}
	if _, err := i.EvalWithContext(ctx, prog); err != nil {
		if ctx.Err() != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		}
		return nil, out.String(), fmt.Errorf("evaluation failed: %w", err)
	}

	v, err := i.EvalWithContext(ctx, "main."+checkFunc+"()")
	if ctx.Err() != nil {
		// the stopped interpreter may still be writing to out
		return nil, "", fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
	}
	if err != nil {
		var p interp.Panic
		if errors.As(err, &p) {
			return nil, out.String(), fmt.Errorf("%w: %v", ErrPanic, p.Value)
		}
		return nil, out.String(), fmt.Errorf("%w: %w", ErrPanic, err)
	}
	if !v.IsValid() {
		return nil, out.String(), nil
	}
	return v.Interface(), out.String(), nil
}

// Verify runs every reference solution in cs concurrently and fails if
// any of them does not pass. Completions are not recorded.
func (r *Runner) Verify(ctx context.Context, cs []*Challenge) ([]*Report, error) {
	reports := make([]*Report, len(cs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for i, c := range cs {
		g.Go(func() error {
			rep, err := r.run(ctx, c, c.Solution)
			if err != nil {
				return fmt.Errorf("%s: %w", c.ID, err)
			}
			reports[i] = rep
			if !rep.Passed {
				return fmt.Errorf("%w: %s", ErrReferenceFailed, c.ID)
			}
			return nil
		})
	}
	return reports, g.Wait()
}
