package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/gostax/internal/panicerr"
)

// New creates a Session with default limits, then applies the given options.
func New(opts ...Option) *Session {
	var s Session
	defaultOptions.apply(&s)
	Options(opts...).apply(&s)
	return &s
}

// Run drives the session's queued input through the line protocol until it
// is exhausted, containing any internal panic as an error. Exhausted input
// is a clean stop, not an error.
func (s *Session) Run(ctx context.Context) error {
	err := panicerr.Recover("session", func() error {
		return s.run(ctx)
	})
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Eval evaluates a single line against the session, returning the rendered
// stack grid; blank and comment lines return "" with no state change.
func (s *Session) Eval(ctx context.Context, line string) (string, error) {
	return s.evalLine(ctx, line)
}

// WithInput queues r as an input source for Run; sources are read in the
// order they were given.
func WithInput(r io.Reader) Option { return withInput(r) }

// WithOutput directs grid rendering and diagnostics to w.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithTee additionally copies all output to w.
func WithTee(w io.Writer) Option { return withTee(w) }

// WithLogf enables trace logging through the given printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithPrecision sets the working precision, in significant digits, that
// division and fractional exponentiation round to.
func WithPrecision(digits int) Option { return withPrecision(digits) }

// WithMaxDigits caps the size of any single number: neither its coefficient
// digits nor its decimal places may exceed the ceiling.
func WithMaxDigits(digits int) Option { return withMaxDigits(digits) }

// WithMaxDepth caps block recursion depth within one line.
func WithMaxDepth(depth int) Option { return withMaxDepth(depth) }
