package main

import (
	"io"

	"github.com/jcorbin/gostax/internal/flushio"
)

// Option configures a Session at construction time.
type Option interface{ apply(s *Session) }

// Options combines any number of options into one, skipping nils.
func Options(opts ...Option) Option {
	var os options
	for _, opt := range opts {
		if opt != nil {
			os = append(os, opt)
		}
	}
	return os
}

type options []Option

func (os options) apply(s *Session) {
	for _, opt := range os {
		opt.apply(s)
	}
}

var defaultOptions = Options(
	withPrecision(48),
	withMaxDigits(4096),
	withMaxDepth(4096),
	optFunc(func(s *Session) {
		s.stacks = newStackSet()
		s.dict = newDictionary()
		s.out = flushio.NewWriteFlusher(io.Discard)
	}),
)

type optFunc func(s *Session)

func (f optFunc) apply(s *Session) { f(s) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(s *Session) { s.logfn = logfn }

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type precisionOption int
type maxDigitsOption int
type maxDepthOption int

func withInput(r io.Reader) inputOption      { return inputOption{r} }
func withOutput(w io.Writer) outputOption    { return outputOption{w} }
func withTee(w io.Writer) teeOption          { return teeOption{w} }
func withPrecision(prec int) precisionOption { return precisionOption(prec) }
func withMaxDigits(n int) maxDigitsOption    { return maxDigitsOption(n) }
func withMaxDepth(n int) maxDepthOption      { return maxDepthOption(n) }

func (i inputOption) apply(s *Session) {
	s.in.Queue = append(s.in.Queue, i.Reader)
}

func (o outputOption) apply(s *Session) {
	if s.out != nil {
		s.out.Flush()
	}
	s.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(s *Session) {
	s.out = flushio.WriteFlushers(s.out, flushio.NewWriteFlusher(o.Writer))
}

func (prec precisionOption) apply(s *Session) { s.numCtx.Prec = int(prec) }
func (n maxDigitsOption) apply(s *Session)    { s.numCtx.MaxDigits = int(n) }
func (n maxDepthOption) apply(s *Session)     { s.maxDepth = int(n) }
