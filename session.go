package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gostax/internal/dec"
	"github.com/jcorbin/gostax/internal/fileinput"
	"github.com/jcorbin/gostax/internal/flushio"
)

// Session is the unit of state mutated by evaluation: the stack set and the
// dictionary, plus the numeric limits they run under. A session is owned by
// one driving loop and is not safe for concurrent use.
type Session struct {
	in    fileinput.Input
	out   flushio.WriteFlusher
	logfn func(mess string, args ...interface{})

	stacks   *stackSet
	dict     *dictionary
	numCtx   dec.Context
	maxDepth int
}

func (s *Session) logf(mess string, args ...interface{}) {
	if s.logfn != nil {
		s.logfn(mess, args...)
	}
}

// run reads lines until the input queue is exhausted, evaluating each per
// the line protocol: blank and comment lines are no-ops with no output,
// anything else prints either the rendered grid or a one-line diagnostic.
// Core errors never stop the loop; input errors and cancellation do.
func (s *Session) run(ctx context.Context) error {
	defer s.out.Flush()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, loc, err := s.in.ReadLine()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		out, err := s.evalLine(ctx, line)
		switch {
		case err == nil:
			if out != "" {
				fmt.Fprintln(s.out, out)
			}
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			fmt.Fprintf(s.out, "%v: error: %v\n", loc, err)
		}
		if err := s.out.Flush(); err != nil {
			return err
		}
	}
}

// evalLine evaluates one line and renders the resulting grid; blank and
// comment lines yield no output and no state change.
func (s *Session) evalLine(ctx context.Context, line string) (string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", nil
	}
	s.logf("eval %q", line)
	ev := evaluator{ctx: ctx, s: s}
	if err := ev.evalLine(line); err != nil {
		s.logf("fail %v", err)
		return "", err
	}
	return formatGrid(s.stacks), nil
}
