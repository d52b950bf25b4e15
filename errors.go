package main

import (
	"errors"
	"fmt"

	"github.com/jcorbin/gostax/internal/dec"
)

// ErrorKind classifies every way a line of input can fail. Any such failure
// aborts only the remainder of its line; the session survives.
type ErrorKind int

const (
	LexError ErrorKind = iota + 1
	StackUnderflow
	TypeMismatch
	UnknownWordError
	ArithmeticError
	PrecisionExceeded
	RecursionLimitExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case StackUnderflow:
		return "stack underflow"
	case TypeMismatch:
		return "type mismatch"
	case UnknownWordError:
		return "unknown word"
	case ArithmeticError:
		return "arithmetic error"
	case PrecisionExceeded:
		return "precision exceeded"
	case RecursionLimitExceeded:
		return "recursion limit exceeded"
	default:
		return fmt.Sprintf("invalid error kind %d", int(k))
	}
}

// Error is an evaluation failure tied to a rune position within the line
// being evaluated.
type Error struct {
	Kind ErrorKind
	Pos  int
	err  error
}

func errAt(kind ErrorKind, pos int, mess string, args ...interface{}) Error {
	return Error{Kind: kind, Pos: pos, err: fmt.Errorf(mess, args...)}
}

func (e Error) Error() string {
	if e.err == nil {
		return fmt.Sprintf("%v at %v", e.Kind, e.Pos)
	}
	return fmt.Sprintf("%v at %v: %v", e.Kind, e.Pos, e.err)
}

func (e Error) Unwrap() error { return e.err }

// Is matches either a bare kind (wrapped in an Error) or another Error with
// the same kind, so tests can assert with errors.Is.
func (e Error) Is(target error) bool {
	var o Error
	if errors.As(target, &o) {
		return o.Kind == e.Kind
	}
	return false
}

// decErr maps a numeric engine failure onto the line error taxonomy.
func decErr(err error, pos int) error {
	kind := ArithmeticError
	if errors.Is(err, dec.ErrPrecision) {
		kind = PrecisionExceeded
	}
	return Error{Kind: kind, Pos: pos, err: err}
}
